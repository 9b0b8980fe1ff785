package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
)

const massBookingColumns = `id, name, email, phone, start_date, preferred_time, intention_type,
	intention_description, number_of_days, total_amount, status, created_at, updated_at`

type MassBookingRepository struct {
	statusTable[model.MassBooking, model.MassBookingStatuses]
}

func NewMassBookingRepository(db DBTX) *MassBookingRepository {
	return &MassBookingRepository{statusTable[model.MassBooking, model.MassBookingStatuses]{
		db:      db,
		table:   "mass_bookings",
		columns: massBookingColumns,
		scan:    scanMassBooking,
	}}
}

func scanMassBooking(row scanner) (*model.MassBooking, error) {
	var b model.MassBooking
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.StartDate,
		&b.PreferredTime,
		&b.IntentionType,
		&b.IntentionDescription,
		&b.NumberOfDays,
		&b.TotalAmount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MassBookingRepository) Create(ctx context.Context, payload *model.CreateMassBookingPayload) (*model.MassBooking, error) {
	query := `
		INSERT INTO mass_bookings (name, email, phone, start_date, preferred_time, intention_type,
			intention_description, number_of_days, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + massBookingColumns

	booking, err := scanMassBooking(r.db.QueryRow(ctx, query,
		payload.Name,
		payload.Email,
		payload.Phone,
		payload.ParsedStartDate(),
		payload.PreferredTime,
		payload.IntentionType,
		payload.IntentionDescription,
		payload.NumberOfDays,
		payload.TotalAmount,
		model.DefaultStatus[model.MassBookingStatuses](),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create mass booking: %w", err)
	}
	return booking, nil
}
