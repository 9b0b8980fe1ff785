package model

import (
	"strings"
	"time"
)

const (
	PrayerStatusUnread = "unread"
	PrayerStatusRead   = "read"
)

// PrayerStatuses is the status set of prayer requests.
type PrayerStatuses struct{}

func (PrayerStatuses) Values() []string {
	return []string{PrayerStatusUnread, PrayerStatusRead}
}

// Prayer is a prayer request submitted through the public website.
type Prayer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Prayer    string    `json:"prayer"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePrayerPayload is the body of POST /api/prayers.
//
// Older clients send the text as "prayer_intention"; see FieldAliases.
type CreatePrayerPayload struct {
	Name   string  `json:"name" validate:"required,max=255"`
	Email  *string `json:"email" validate:"omitempty,max=100"`
	Phone  *string `json:"phone" validate:"omitempty,max=20"`
	Prayer string  `json:"prayer" validate:"required"`
}

// FieldAliases lists accepted names per canonical field, highest priority first.
func (p *CreatePrayerPayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"prayer": {"prayer_intention", "prayer"},
	}
}

func (p *CreatePrayerPayload) RequiredMessage() string {
	return "Name and prayer are required"
}

func (p *CreatePrayerPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Prayer = strings.TrimSpace(p.Prayer)
	p.Email = NullIfEmpty(p.Email)
	p.Phone = NullIfEmpty(p.Phone)
	return validate.Struct(p)
}

type (
	ListPrayersRequest        = ListRequest[PrayerStatuses]
	UpdatePrayerStatusRequest = UpdateStatusRequest[PrayerStatuses]
)
