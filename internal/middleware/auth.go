package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/deppfellow/shrine-api/internal/lib/token"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

const ClaimsKey = "claims"

// loginRedirect sends the admin frontend back to its login page when a
// token is rejected.
var loginRedirect = &errs.Action{
	Type:    errs.ActionTypeRedirect,
	Message: "Your session has expired, please log in again",
	Value:   "/admin/login",
}

type tokenVerifier interface {
	Verify(tokenStr string) (*token.Claims, error)
}

// AuthMiddleware guards the admin routes with the bearer tokens issued at login.
type AuthMiddleware struct {
	server *server.Server
	tokens tokenVerifier
}

func NewAuthMiddleware(s *server.Server, tokens tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: tokens,
	}
}

// RequireAuth rejects the request with 401 unless it carries a valid
// "Authorization: Bearer <token>" header. On success the admin id, role and
// claims are stored on the echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			auth.server.Logger.Warn().
				Str("function", "RequireAuth").
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("missing bearer token")
			return errs.NewUnauthorizedError("Authentication required", true)
		}

		claims, err := auth.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			auth.server.Logger.Warn().
				Err(err).
				Str("function", "RequireAuth").
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("rejected admin token")
			return errs.NewUnauthorizedError("Invalid or expired token", true).WithAction(loginRedirect)
		}

		c.Set(UserIDKey, strconv.FormatInt(claims.AdminID, 10))
		c.Set(UserRoleKey, claims.Role)
		c.Set(ClaimsKey, claims)

		return next(c)
	}
}

// GetClaims returns the token claims stored by RequireAuth, if any.
func GetClaims(c echo.Context) (*token.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(*token.Claims)
	return claims, ok && claims != nil
}
