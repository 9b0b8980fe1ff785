// Package middleware holds the global and route-specific echo middleware:
// request ids, request-scoped logging, New Relic tracing, CORS, bearer-token
// authentication for admin routes, rate limiting for public submissions and
// the global error handler.
package middleware
