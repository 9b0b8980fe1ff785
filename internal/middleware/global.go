package middleware

import (
	"net/http"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/deppfellow/shrine-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// error handler that turns returned errors into JSON responses.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	})
}

// RequestLogger writes one "API" line per request, leveled by status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// The error handler has not written the response yet when a
			// handler returns an error, so the status comes from the error.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			status := v.Status
			if v.Error != nil {
				status = toHTTPError(v.Error).Status
			}

			e := levelFor(GetLogger(c), status)
			if status >= http.StatusInternalServerError {
				e = e.Err(v.Error)
			}
			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}
			if adminID := GetUserID(c); adminID != "" {
				e = e.Str("admin_id", adminID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("route", c.Path()).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// levelFor maps 5xx to Error, 4xx to Warn and the rest to Info.
func levelFor(logger *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return logger.Error()
	case status >= http.StatusBadRequest:
		return logger.Warn()
	default:
		return logger.Info()
	}
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// BodyLimit caps request bodies; submissions are small JSON documents.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit("1M")
}

// toHTTPError resolves any error a handler returns into the body clients see.
//
// Echo's own errors keep their status; an unknown route gets our 404 body.
// Everything else goes through sqlerr.HandleError, which never carries
// driver text.
func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found", false, nil)
		}
		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return &errs.HTTPError{
			Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
			Message: message,
			Status:  echoErr.Code,
		}
	}

	if errors.As(sqlerr.HandleError(err), &httpErr) {
		return httpErr
	}
	return errs.NewInternalServerError()
}

// GlobalErrorHandler is the single place errors become responses. The
// original error is logged in full, with a stack for 5xx.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	resolved := toHTTPError(err)

	event := levelFor(GetLogger(c), resolved.Status)
	if resolved.Status >= http.StatusInternalServerError {
		event = event.Stack()
	}
	event.
		Err(err).
		Int("status", resolved.Status).
		Str("error_code", resolved.Code).
		Str("route", c.Path()).
		Msg(resolved.Message)

	if !c.Response().Committed {
		_ = c.JSON(resolved.Status, resolved)
	}
}
