package service

import (
	"context"
	"time"

	"github.com/deppfellow/shrine-api/internal/model"
)

type announcementRepository interface {
	statusStore[model.Announcement]
	Create(ctx context.Context, payload *model.CreateAnnouncementPayload) (*model.Announcement, error)
}

type AnnouncementService struct {
	statusService[model.Announcement, model.AnnouncementStatuses]
	repo announcementRepository
}

func NewAnnouncementService(repo announcementRepository) *AnnouncementService {
	return &AnnouncementService{
		statusService: newStatusService[model.Announcement, model.AnnouncementStatuses](repo, "Announcement"),
		repo:          repo,
	}
}

func (s *AnnouncementService) Create(ctx context.Context, payload *model.CreateAnnouncementPayload) (*model.Announcement, error) {
	return s.repo.Create(ctx, payload)
}

func (s *AnnouncementService) ListPublic(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.ListByStatus(ctx, model.AnnouncementStatusActive)
}

type galleryRepository interface {
	statusStore[model.GalleryImage]
	Create(ctx context.Context, payload *model.CreateGalleryImagePayload) (*model.GalleryImage, error)
}

type GalleryService struct {
	statusService[model.GalleryImage, model.GalleryStatuses]
	repo galleryRepository
}

func NewGalleryService(repo galleryRepository) *GalleryService {
	return &GalleryService{
		statusService: newStatusService[model.GalleryImage, model.GalleryStatuses](repo, "Gallery image"),
		repo:          repo,
	}
}

func (s *GalleryService) Create(ctx context.Context, payload *model.CreateGalleryImagePayload) (*model.GalleryImage, error) {
	return s.repo.Create(ctx, payload)
}

func (s *GalleryService) ListPublic(ctx context.Context) ([]model.GalleryImage, error) {
	return s.repo.ListByStatus(ctx, model.GalleryStatusPublic)
}

type livestreamRepository interface {
	statusStore[model.Livestream]
	Create(ctx context.Context, payload *model.CreateLivestreamPayload) (*model.Livestream, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]model.Livestream, error)
}

type LivestreamService struct {
	statusService[model.Livestream, model.LivestreamStatuses]
	repo livestreamRepository
	now  func() time.Time
}

func NewLivestreamService(repo livestreamRepository) *LivestreamService {
	return &LivestreamService{
		statusService: newStatusService[model.Livestream, model.LivestreamStatuses](repo, "Livestream"),
		repo:          repo,
		now:           time.Now,
	}
}

func (s *LivestreamService) Create(ctx context.Context, payload *model.CreateLivestreamPayload) (*model.Livestream, error) {
	return s.repo.Create(ctx, payload)
}

// ListActive returns the streams currently live.
func (s *LivestreamService) ListActive(ctx context.Context) ([]model.Livestream, error) {
	return s.repo.ListByStatus(ctx, model.LivestreamStatusLive)
}

func (s *LivestreamService) ListUpcoming(ctx context.Context) ([]model.Livestream, error) {
	return s.repo.ListUpcoming(ctx, s.now())
}

type contactRepository interface {
	Get(ctx context.Context) (*model.ContactInfo, error)
	Upsert(ctx context.Context, payload *model.UpdateContactPayload) (*model.ContactInfo, error)
}

type ContactService struct {
	repo contactRepository
}

func NewContactService(repo contactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Get(ctx context.Context) (*model.ContactInfo, error) {
	return s.repo.Get(ctx)
}

func (s *ContactService) Update(ctx context.Context, payload *model.UpdateContactPayload) (*model.ContactInfo, error) {
	return s.repo.Upsert(ctx, payload)
}
