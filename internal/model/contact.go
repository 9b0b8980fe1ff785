package model

import (
	"strings"
	"time"
)

// ContactInfo is the shrine's single contact record.
type ContactInfo struct {
	Address     string    `json:"address"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	OfficeHours *string   `json:"office_hours"`
	MapURL      *string   `json:"map_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateContactPayload struct {
	Address     string  `json:"address" validate:"required"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	OfficeHours *string `json:"office_hours"`
	MapURL      *string `json:"map_url" validate:"omitempty,url"`
}

func (p *UpdateContactPayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"office_hours": {"office_hours", "officeHours"},
		"map_url":      {"map_url", "mapUrl"},
	}
}

func (p *UpdateContactPayload) RequiredMessage() string {
	return "Address is required"
}

func (p *UpdateContactPayload) Validate() error {
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = NullIfEmpty(p.Phone)
	p.Email = NullIfEmpty(p.Email)
	p.OfficeHours = NullIfEmpty(p.OfficeHours)
	p.MapURL = NullIfEmpty(p.MapURL)
	return validate.Struct(p)
}
