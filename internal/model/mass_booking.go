package model

import (
	"strings"
	"time"
)

const (
	MassBookingStatusPending   = "pending"
	MassBookingStatusConfirmed = "confirmed"
	MassBookingStatusCancelled = "cancelled"
)

type MassBookingStatuses struct{}

func (MassBookingStatuses) Values() []string {
	return []string{MassBookingStatusPending, MassBookingStatusConfirmed, MassBookingStatusCancelled}
}

// MassBooking is a request to offer one or more masses for an intention.
type MassBooking struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Email                *string   `json:"email"`
	Phone                *string   `json:"phone"`
	StartDate            time.Time `json:"start_date"`
	PreferredTime        *string   `json:"preferred_time"`
	IntentionType        string    `json:"intention_type"`
	IntentionDescription *string   `json:"intention_description"`
	NumberOfDays         int32     `json:"number_of_days"`
	TotalAmount          float64   `json:"total_amount"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CreateMassBookingPayload accepts both snake_case and the camelCase names
// the booking form historically posted.
type CreateMassBookingPayload struct {
	Name                 string  `json:"name" validate:"required,max=255"`
	Email                *string `json:"email" validate:"omitempty,max=100"`
	Phone                *string `json:"phone" validate:"omitempty,max=20"`
	StartDate            string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	PreferredTime        *string `json:"preferred_time" validate:"omitempty,datetime=15:04"`
	IntentionType        string  `json:"intention_type" validate:"required,max=50"`
	IntentionDescription *string `json:"intention_description"`
	NumberOfDays         int32   `json:"number_of_days" validate:"min=1,max=365"`
	TotalAmount          float64 `json:"total_amount" validate:"min=0"`
}

func (p *CreateMassBookingPayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"start_date":            {"start_date", "startDate"},
		"preferred_time":        {"preferred_time", "preferredTime"},
		"intention_type":        {"intention_type", "intentionType"},
		"intention_description": {"intention_description", "intentionDescription"},
		"number_of_days":        {"number_of_days", "numberOfDays"},
		"total_amount":          {"total_amount", "totalAmount"},
	}
}

func (p *CreateMassBookingPayload) RequiredMessage() string {
	return "Name, start date and intention type are required"
}

func (p *CreateMassBookingPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.StartDate = strings.TrimSpace(p.StartDate)
	p.IntentionType = strings.TrimSpace(p.IntentionType)
	p.Email = NullIfEmpty(p.Email)
	p.Phone = NullIfEmpty(p.Phone)
	p.PreferredTime = NullIfEmpty(p.PreferredTime)
	p.IntentionDescription = NullIfEmpty(p.IntentionDescription)
	if p.NumberOfDays == 0 {
		p.NumberOfDays = 1
	}
	return validate.Struct(p)
}

// ParsedStartDate returns StartDate as a date. Only valid after Validate.
func (p *CreateMassBookingPayload) ParsedStartDate() time.Time {
	t, _ := time.Parse(time.DateOnly, p.StartDate)
	return t
}

type (
	ListMassBookingsRequest        = ListRequest[MassBookingStatuses]
	UpdateMassBookingStatusRequest = UpdateStatusRequest[MassBookingStatuses]
)
