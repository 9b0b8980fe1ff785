package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
)

const galleryColumns = `id, title, description, image_url, category, status, created_at, updated_at`

type GalleryRepository struct {
	statusTable[model.GalleryImage, model.GalleryStatuses]
}

func NewGalleryRepository(db DBTX) *GalleryRepository {
	return &GalleryRepository{statusTable[model.GalleryImage, model.GalleryStatuses]{
		db:      db,
		table:   "gallery_images",
		columns: galleryColumns,
		scan:    scanGalleryImage,
	}}
}

func scanGalleryImage(row scanner) (*model.GalleryImage, error) {
	var g model.GalleryImage
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.Category, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) Create(ctx context.Context, payload *model.CreateGalleryImagePayload) (*model.GalleryImage, error) {
	query := `
		INSERT INTO gallery_images (title, description, image_url, category, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + galleryColumns

	image, err := scanGalleryImage(r.db.QueryRow(ctx, query,
		payload.Title,
		payload.Description,
		payload.ImageURL,
		payload.Category,
		model.DefaultStatus[model.GalleryStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return image, nil
}
