package middleware

import (
	"github.com/deppfellow/shrine-api/internal/config"
	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles the public submission endpoints per client IP.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// PublicSubmissions is shared by every public create route, so one client
// has a single budget across prayers, testimonies, donations and bookings.
func (r *RateLimitMiddleware) PublicSubmissions() echo.MiddlewareFunc {
	return r.limiter("Too many submissions, please try again shortly")
}

// Login throttles admin sign-in attempts. Its buckets are separate from the
// submission limiter.
func (r *RateLimitMiddleware) Login() echo.MiddlewareFunc {
	return r.limiter("Too many login attempts, please try again shortly")
}

// limiter returns a per-IP limiter with its own in-memory token buckets.
// Denied requests get a 429 and a RateLimitHit event in New Relic.
func (r *RateLimitMiddleware) limiter(deniedMessage string) echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if cfg == nil {
		cfg = config.DefaultRateLimitConfig()
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewForbiddenError("Unable to identify client", true)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("ip", identifier).
				Str("endpoint", c.Path()).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError(deniedMessage)
		},
	})
}

func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
