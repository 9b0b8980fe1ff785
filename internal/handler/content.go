package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

type announcementService interface {
	statusResource[model.Announcement]
	Create(ctx context.Context, payload *model.CreateAnnouncementPayload) (*model.Announcement, error)
	ListPublic(ctx context.Context) ([]model.Announcement, error)
}

type AnnouncementHandler struct {
	statusHandler[model.Announcement, model.AnnouncementStatuses]
	service announcementService
}

func NewAnnouncementHandler(s *server.Server, service announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		statusHandler: statusHandler[model.Announcement, model.AnnouncementStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *AnnouncementHandler) Create(c echo.Context, req *model.CreateAnnouncementPayload) (*model.Announcement, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *AnnouncementHandler) ListPublic(c echo.Context, _ *model.EmptyRequest) ([]model.Announcement, error) {
	return h.service.ListPublic(c.Request().Context())
}

type galleryService interface {
	statusResource[model.GalleryImage]
	Create(ctx context.Context, payload *model.CreateGalleryImagePayload) (*model.GalleryImage, error)
	ListPublic(ctx context.Context) ([]model.GalleryImage, error)
}

type GalleryHandler struct {
	statusHandler[model.GalleryImage, model.GalleryStatuses]
	service galleryService
}

func NewGalleryHandler(s *server.Server, service galleryService) *GalleryHandler {
	return &GalleryHandler{
		statusHandler: statusHandler[model.GalleryImage, model.GalleryStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *GalleryHandler) Create(c echo.Context, req *model.CreateGalleryImagePayload) (*model.GalleryImage, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *GalleryHandler) ListPublic(c echo.Context, _ *model.EmptyRequest) ([]model.GalleryImage, error) {
	return h.service.ListPublic(c.Request().Context())
}

type livestreamService interface {
	statusResource[model.Livestream]
	Create(ctx context.Context, payload *model.CreateLivestreamPayload) (*model.Livestream, error)
	ListActive(ctx context.Context) ([]model.Livestream, error)
	ListUpcoming(ctx context.Context) ([]model.Livestream, error)
}

type LivestreamHandler struct {
	statusHandler[model.Livestream, model.LivestreamStatuses]
	service livestreamService
}

func NewLivestreamHandler(s *server.Server, service livestreamService) *LivestreamHandler {
	return &LivestreamHandler{
		statusHandler: statusHandler[model.Livestream, model.LivestreamStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *LivestreamHandler) Create(c echo.Context, req *model.CreateLivestreamPayload) (*model.Livestream, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *LivestreamHandler) ListActive(c echo.Context, _ *model.EmptyRequest) ([]model.Livestream, error) {
	return h.service.ListActive(c.Request().Context())
}

func (h *LivestreamHandler) ListUpcoming(c echo.Context, _ *model.EmptyRequest) ([]model.Livestream, error) {
	return h.service.ListUpcoming(c.Request().Context())
}

type contactService interface {
	Get(ctx context.Context) (*model.ContactInfo, error)
	Update(ctx context.Context, payload *model.UpdateContactPayload) (*model.ContactInfo, error)
}

type ContactHandler struct {
	Handler
	service contactService
}

func NewContactHandler(s *server.Server, service contactService) *ContactHandler {
	return &ContactHandler{Handler: NewHandler(s), service: service}
}

// Get responds 404 until an admin has saved the contact details once.
func (h *ContactHandler) Get(c echo.Context, _ *model.EmptyRequest) (*model.ContactInfo, error) {
	return h.service.Get(c.Request().Context())
}

func (h *ContactHandler) Update(c echo.Context, req *model.UpdateContactPayload) (*model.ContactInfo, error) {
	return h.service.Update(c.Request().Context(), req)
}
