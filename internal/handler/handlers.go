// Package handler is the HTTP layer: every endpoint binds and validates a
// typed request, calls one service method and writes JSON.
package handler

import (
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/deppfellow/shrine-api/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health        *HealthHandler
	OpenAPI       *OpenAPIHandler
	Admin         *AdminHandler
	Prayers       *PrayerHandler
	Testimonies   *TestimonyHandler
	Donations     *DonationHandler
	MassBookings  *MassBookingHandler
	Announcements *AnnouncementHandler
	Gallery       *GalleryHandler
	Livestreams   *LivestreamHandler
	Contact       *ContactHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(s),
		OpenAPI:       NewOpenAPIHandler(s),
		Admin:         NewAdminHandler(s, services.Auth, services.Dashboard),
		Prayers:       NewPrayerHandler(s, services.Prayers),
		Testimonies:   NewTestimonyHandler(s, services.Testimonies),
		Donations:     NewDonationHandler(s, services.Donations),
		MassBookings:  NewMassBookingHandler(s, services.MassBookings),
		Announcements: NewAnnouncementHandler(s, services.Announcements),
		Gallery:       NewGalleryHandler(s, services.Gallery),
		Livestreams:   NewLivestreamHandler(s, services.Livestreams),
		Contact:       NewContactHandler(s, services.Contact),
	}
}
