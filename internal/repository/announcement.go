package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
)

const announcementColumns = `id, title, content, type, status, created_at, updated_at`

type AnnouncementRepository struct {
	statusTable[model.Announcement, model.AnnouncementStatuses]
}

func NewAnnouncementRepository(db DBTX) *AnnouncementRepository {
	return &AnnouncementRepository{statusTable[model.Announcement, model.AnnouncementStatuses]{
		db:      db,
		table:   "announcements",
		columns: announcementColumns,
		scan:    scanAnnouncement,
	}}
}

func scanAnnouncement(row scanner) (*model.Announcement, error) {
	var a model.Announcement
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Type, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create publishes an announcement; admins create them already active.
func (r *AnnouncementRepository) Create(ctx context.Context, payload *model.CreateAnnouncementPayload) (*model.Announcement, error) {
	query := `
		INSERT INTO announcements (title, content, type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + announcementColumns

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query,
		payload.Title,
		payload.Content,
		payload.Type,
		model.DefaultStatus[model.AnnouncementStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}
