package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
)

const testimonyColumns = `id, name, email, testimony, status, created_at, updated_at`

type TestimonyRepository struct {
	statusTable[model.Testimony, model.TestimonyStatuses]
}

func NewTestimonyRepository(db DBTX) *TestimonyRepository {
	return &TestimonyRepository{statusTable[model.Testimony, model.TestimonyStatuses]{
		db:      db,
		table:   "testimonies",
		columns: testimonyColumns,
		scan:    scanTestimony,
	}}
}

func scanTestimony(row scanner) (*model.Testimony, error) {
	var t model.Testimony
	if err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Testimony, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonyRepository) Create(ctx context.Context, payload *model.CreateTestimonyPayload) (*model.Testimony, error) {
	query := `
		INSERT INTO testimonies (name, email, testimony, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + testimonyColumns

	testimony, err := scanTestimony(r.db.QueryRow(ctx, query,
		payload.Name,
		payload.Email,
		payload.Testimony,
		model.DefaultStatus[model.TestimonyStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create testimony: %w", err)
	}
	return testimony, nil
}
