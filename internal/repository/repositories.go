package repository

import (
	"github.com/deppfellow/shrine-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository shares the one pool owned by server.DB.
type Repositories struct {
	Prayers       *PrayerRepository
	Testimonies   *TestimonyRepository
	Donations     *DonationRepository
	MassBookings  *MassBookingRepository
	Announcements *AnnouncementRepository
	Gallery       *GalleryRepository
	Livestreams   *LivestreamRepository
	Contact       *ContactRepository
	Admins        *AdminRepository
}

// NewRepositories constructs the repository container on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db.
func New(db DBTX) *Repositories {
	return &Repositories{
		Prayers:       NewPrayerRepository(db),
		Testimonies:   NewTestimonyRepository(db),
		Donations:     NewDonationRepository(db),
		MassBookings:  NewMassBookingRepository(db),
		Announcements: NewAnnouncementRepository(db),
		Gallery:       NewGalleryRepository(db),
		Livestreams:   NewLivestreamRepository(db),
		Contact:       NewContactRepository(db),
		Admins:        NewAdminRepository(db),
	}
}
