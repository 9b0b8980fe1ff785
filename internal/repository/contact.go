package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// ContactRepository reads and writes the single contact_info row.
type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `address, phone, email, office_hours, map_url, updated_at`

func scanContact(row scanner) (*model.ContactInfo, error) {
	var c model.ContactInfo
	if err := row.Scan(&c.Address, &c.Phone, &c.Email, &c.OfficeHours, &c.MapURL, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the contact info, or a not-found error before it is first set.
func (r *ContactRepository) Get(ctx context.Context) (*model.ContactInfo, error) {
	contact, err := scanContact(r.db.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_info WHERE id = 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("contact_info")
		}
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}
	return contact, nil
}

// Upsert replaces the contact info.
func (r *ContactRepository) Upsert(ctx context.Context, payload *model.UpdateContactPayload) (*model.ContactInfo, error) {
	query := `
		INSERT INTO contact_info (id, address, phone, email, office_hours, map_url)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			office_hours = EXCLUDED.office_hours,
			map_url = EXCLUDED.map_url,
			updated_at = NOW()
		RETURNING ` + contactColumns

	contact, err := scanContact(r.db.QueryRow(ctx, query,
		payload.Address,
		payload.Phone,
		payload.Email,
		payload.OfficeHours,
		payload.MapURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert contact info: %w", err)
	}
	return contact, nil
}
