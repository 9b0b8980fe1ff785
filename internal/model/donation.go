package model

import (
	"strings"
	"time"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

type DonationStatuses struct{}

func (DonationStatuses) Values() []string {
	return []string{DonationStatusPending, DonationStatusCompleted, DonationStatusFailed}
}

// DonationPurposes is served by GET /api/donations/purposes.
var DonationPurposes = []string{
	"General Offering",
	"Shrine Maintenance",
	"Feast Celebration",
	"Charity and Outreach",
	"Mass Offering",
	"Building Fund",
}

// Donation records a gift and its payment state. Payment itself happens
// with an external provider; only the reference is kept here.
type Donation struct {
	ID               int64     `json:"id"`
	DonorName        string    `json:"donor_name"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Amount           float64   `json:"amount"`
	Purpose          string    `json:"purpose"`
	PaymentReference *string   `json:"payment_reference"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateDonationPayload struct {
	DonorName        string  `json:"donor_name" validate:"required,max=255"`
	Email            *string `json:"email" validate:"omitempty,max=100"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Purpose          string  `json:"purpose" validate:"required,max=100"`
	PaymentReference *string `json:"payment_reference" validate:"omitempty,max=100"`
}

func (p *CreateDonationPayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"donor_name":        {"donor_name", "donorName", "name"},
		"payment_reference": {"payment_reference", "paymentReference"},
	}
}

func (p *CreateDonationPayload) RequiredMessage() string {
	return "Donor name, amount and purpose are required"
}

func (p *CreateDonationPayload) Validate() error {
	p.DonorName = strings.TrimSpace(p.DonorName)
	p.Purpose = strings.TrimSpace(p.Purpose)
	p.Email = NullIfEmpty(p.Email)
	p.Phone = NullIfEmpty(p.Phone)
	p.PaymentReference = NullIfEmpty(p.PaymentReference)
	return validate.Struct(p)
}

type (
	ListDonationsRequest        = ListRequest[DonationStatuses]
	UpdateDonationStatusRequest = UpdateStatusRequest[DonationStatuses]
)
