package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/shrine-api/internal/model"
)

const livestreamColumns = `id, title, description, stream_url, scheduled_at, status, created_at, updated_at`

type LivestreamRepository struct {
	statusTable[model.Livestream, model.LivestreamStatuses]
}

func NewLivestreamRepository(db DBTX) *LivestreamRepository {
	return &LivestreamRepository{statusTable[model.Livestream, model.LivestreamStatuses]{
		db:      db,
		table:   "livestreams",
		columns: livestreamColumns,
		scan:    scanLivestream,
	}}
}

func scanLivestream(row scanner) (*model.Livestream, error) {
	var l model.Livestream
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.StreamURL, &l.ScheduledAt, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LivestreamRepository) Create(ctx context.Context, payload *model.CreateLivestreamPayload) (*model.Livestream, error) {
	query := `
		INSERT INTO livestreams (title, description, stream_url, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + livestreamColumns

	stream, err := scanLivestream(r.db.QueryRow(ctx, query,
		payload.Title,
		payload.Description,
		payload.StreamURL,
		payload.ScheduledAt,
		model.DefaultStatus[model.LivestreamStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create livestream: %w", err)
	}
	return stream, nil
}

// ListUpcoming returns streams still in "upcoming" that are scheduled at
// or after now, soonest first.
func (r *LivestreamRepository) ListUpcoming(ctx context.Context, now time.Time) ([]model.Livestream, error) {
	query := `
		SELECT ` + livestreamColumns + `
		FROM livestreams
		WHERE status = $1 AND scheduled_at >= $2
		ORDER BY scheduled_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, model.LivestreamStatusUpcoming, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming livestreams: %w", err)
	}
	return r.collect(rows)
}
