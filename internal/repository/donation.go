package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
)

const donationColumns = `id, donor_name, email, phone, amount, purpose, payment_reference, status, created_at, updated_at`

type DonationRepository struct {
	statusTable[model.Donation, model.DonationStatuses]
}

func NewDonationRepository(db DBTX) *DonationRepository {
	return &DonationRepository{statusTable[model.Donation, model.DonationStatuses]{
		db:      db,
		table:   "donations",
		columns: donationColumns,
		scan:    scanDonation,
	}}
}

func scanDonation(row scanner) (*model.Donation, error) {
	var d model.Donation
	err := row.Scan(
		&d.ID,
		&d.DonorName,
		&d.Email,
		&d.Phone,
		&d.Amount,
		&d.Purpose,
		&d.PaymentReference,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepository) Create(ctx context.Context, payload *model.CreateDonationPayload) (*model.Donation, error) {
	query := `
		INSERT INTO donations (donor_name, email, phone, amount, purpose, payment_reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + donationColumns

	donation, err := scanDonation(r.db.QueryRow(ctx, query,
		payload.DonorName,
		payload.Email,
		payload.Phone,
		payload.Amount,
		payload.Purpose,
		payload.PaymentReference,
		model.DefaultStatus[model.DonationStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	return donation, nil
}
