package model

import (
	"strings"
	"time"
)

const (
	GalleryStatusPublic = "public"
	GalleryStatusHidden = "hidden"
)

type GalleryStatuses struct{}

func (GalleryStatuses) Values() []string {
	return []string{GalleryStatusPublic, GalleryStatusHidden}
}

// GalleryImage points at an image already hosted elsewhere.
type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    *string   `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateGalleryImagePayload struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url" validate:"required,url"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
}

func (p *CreateGalleryImagePayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"image_url": {"image_url", "imageUrl"},
	}
}

func (p *CreateGalleryImagePayload) RequiredMessage() string {
	return "Title and image URL are required"
}

func (p *CreateGalleryImagePayload) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Description = NullIfEmpty(p.Description)
	p.Category = NullIfEmpty(p.Category)
	return validate.Struct(p)
}

type (
	ListGalleryImagesRequest        = ListRequest[GalleryStatuses]
	UpdateGalleryImageStatusRequest = UpdateStatusRequest[GalleryStatuses]
)
