package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
)

const prayerColumns = `id, name, email, phone, prayer_intention, status, created_at, updated_at`

type PrayerRepository struct {
	statusTable[model.Prayer, model.PrayerStatuses]
}

func NewPrayerRepository(db DBTX) *PrayerRepository {
	return &PrayerRepository{statusTable[model.Prayer, model.PrayerStatuses]{
		db:      db,
		table:   "prayer_requests",
		columns: prayerColumns,
		scan:    scanPrayer,
	}}
}

func scanPrayer(row scanner) (*model.Prayer, error) {
	var p model.Prayer
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Prayer, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a prayer request in the default status.
func (r *PrayerRepository) Create(ctx context.Context, payload *model.CreatePrayerPayload) (*model.Prayer, error) {
	query := `
		INSERT INTO prayer_requests (name, email, phone, prayer_intention, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + prayerColumns

	prayer, err := scanPrayer(r.db.QueryRow(ctx, query,
		payload.Name,
		payload.Email,
		payload.Phone,
		payload.Prayer,
		model.DefaultStatus[model.PrayerStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create prayer request: %w", err)
	}
	return prayer, nil
}
