// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/shrine-api/internal/lib/job"
	"github.com/deppfellow/shrine-api/internal/lib/token"
	"github.com/deppfellow/shrine-api/internal/repository"
	"github.com/deppfellow/shrine-api/internal/server"
)

type Services struct {
	Auth          *AuthService
	Prayers       *PrayerService
	Testimonies   *TestimonyService
	Donations     *DonationService
	MassBookings  *MassBookingService
	Announcements *AnnouncementService
	Gallery       *GalleryService
	Livestreams   *LivestreamService
	Contact       *ContactService
	Dashboard     *DashboardService

	Tokens *token.Provider
	Job    *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	tokens := token.NewProvider(s.Config.Auth.SecretKey, s.Config.Auth.TokenTTL)

	// A nil *job.JobService must stay a nil interface.
	var (
		prayerNotify  prayerNotifier
		bookingNotify massBookingNotifier
	)
	if s.Job != nil {
		prayerNotify = s.Job
		bookingNotify = s.Job
	}

	return &Services{
		Auth:          NewAuthService(repos.Admins, tokens),
		Prayers:       NewPrayerService(repos.Prayers, prayerNotify),
		Testimonies:   NewTestimonyService(repos.Testimonies),
		Donations:     NewDonationService(repos.Donations),
		MassBookings:  NewMassBookingService(repos.MassBookings, bookingNotify),
		Announcements: NewAnnouncementService(repos.Announcements),
		Gallery:       NewGalleryService(repos.Gallery),
		Livestreams:   NewLivestreamService(repos.Livestreams),
		Contact:       NewContactService(repos.Contact),
		Dashboard: NewDashboardService(
			repos.Prayers,
			repos.Testimonies,
			repos.Donations,
			repos.MassBookings,
		),
		Tokens: tokens,
		Job:    s.Job,
	}
}
