// Package router builds the echo instance: global middleware in order,
// the public submission and read endpoints, and the admin endpoints behind
// bearer-token authentication.
package router

import (
	"net/http"

	"github.com/deppfellow/shrine-api/internal/handler"
	"github.com/deppfellow/shrine-api/internal/middleware"
	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request id and the New Relic transaction must exist
	// before the request logger is built.
	router.Use(
		mw.Global.Recover(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerPublicRoutes(api, h, mw.RateLimit.PublicSubmissions())

	// Route-level rather than group middleware: a group Use would answer 401
	// for unknown public paths under /api. EnhanceContext runs again so the
	// request logger carries the admin id.
	admin := []echo.MiddlewareFunc{mw.Auth.RequireAuth, mw.ContextEnhancer.EnhanceContext()}
	api.POST("/admin/login", handler.Handle(h.Admin.Login, http.StatusOK), mw.RateLimit.Login())
	registerAdminRoutes(api, h, admin...)

	return router
}

func registerPublicRoutes(api *echo.Group, h *handler.Handlers, limit echo.MiddlewareFunc) {
	api.POST("/prayers", handler.Handle(h.Prayers.Create, http.StatusCreated), limit)
	api.POST("/testimonies", handler.Handle(h.Testimonies.Create, http.StatusCreated), limit)
	api.POST("/donations", handler.Handle(h.Donations.Create, http.StatusCreated), limit)
	api.POST("/mass-bookings", handler.Handle(h.MassBookings.Create, http.StatusCreated), limit)

	api.GET("/testimonies/approved", handler.Handle(h.Testimonies.ListApproved, http.StatusOK))
	api.GET("/donations/purposes", handler.Handle(h.Donations.Purposes, http.StatusOK))
	api.GET("/announcements/public", handler.Handle(h.Announcements.ListPublic, http.StatusOK))
	api.GET("/gallery/public", handler.Handle(h.Gallery.ListPublic, http.StatusOK))
	api.GET("/livestream/active", handler.Handle(h.Livestreams.ListActive, http.StatusOK))
	api.GET("/livestream/upcoming", handler.Handle(h.Livestreams.ListUpcoming, http.StatusOK))
	api.GET("/contact", handler.Handle(h.Contact.Get, http.StatusOK))
}

func registerAdminRoutes(api *echo.Group, h *handler.Handlers, admin ...echo.MiddlewareFunc) {
	api.GET("/admin/me", handler.Handle(h.Admin.Me, http.StatusOK), admin...)
	api.GET("/admin/dashboard", handler.Handle(h.Admin.Dashboard, http.StatusOK), admin...)

	registerStatusRoutes[model.Prayer, model.PrayerStatuses](api, "/prayers", h.Prayers, admin...)
	registerStatusRoutes[model.Testimony, model.TestimonyStatuses](api, "/testimonies", h.Testimonies, admin...)
	registerStatusRoutes[model.Donation, model.DonationStatuses](api, "/donations", h.Donations, admin...)
	registerStatusRoutes[model.MassBooking, model.MassBookingStatuses](api, "/mass-bookings", h.MassBookings, admin...)
	registerStatusRoutes[model.Announcement, model.AnnouncementStatuses](api, "/announcements", h.Announcements, admin...)
	registerStatusRoutes[model.GalleryImage, model.GalleryStatuses](api, "/gallery", h.Gallery, admin...)
	registerStatusRoutes[model.Livestream, model.LivestreamStatuses](api, "/livestream", h.Livestreams, admin...)

	api.POST("/announcements", handler.Handle(h.Announcements.Create, http.StatusCreated), admin...)
	api.POST("/gallery", handler.Handle(h.Gallery.Create, http.StatusCreated), admin...)
	api.POST("/livestream", handler.Handle(h.Livestreams.Create, http.StatusCreated), admin...)
	api.PUT("/contact", handler.Handle(h.Contact.Update, http.StatusOK), admin...)
}

type statusRoutes[T any, S model.StatusSet] interface {
	List(c echo.Context, req *model.ListRequest[S]) ([]T, error)
	Stats(c echo.Context, req *model.EmptyRequest) (model.Stats, error)
	UpdateStatus(c echo.Context, req *model.UpdateStatusRequest[S]) (*T, error)
	Delete(c echo.Context, req *model.IDRequest) (*model.DeleteResponse[T], error)
}

// registerStatusRoutes mounts the moderation endpoints shared by every
// status-bearing resource. Status updates accept PATCH and PUT.
func registerStatusRoutes[T any, S model.StatusSet](api *echo.Group, prefix string, h statusRoutes[T, S], m ...echo.MiddlewareFunc) {
	api.GET(prefix, handler.Handle(h.List, http.StatusOK), m...)
	api.GET(prefix+"/stats", handler.Handle(h.Stats, http.StatusOK), m...)
	api.PATCH(prefix+"/:id/status", handler.Handle(h.UpdateStatus, http.StatusOK), m...)
	api.PUT(prefix+"/:id/status", handler.Handle(h.UpdateStatus, http.StatusOK), m...)
	api.DELETE(prefix+"/:id", handler.Handle(h.Delete, http.StatusOK), m...)
}
