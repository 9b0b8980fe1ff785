package model

import (
	"strings"
	"time"
)

const (
	AnnouncementStatusActive   = "active"
	AnnouncementStatusInactive = "inactive"
)

type AnnouncementStatuses struct{}

func (AnnouncementStatuses) Values() []string {
	return []string{AnnouncementStatusActive, AnnouncementStatusInactive}
}

type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAnnouncementPayload struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Type    string `json:"type" validate:"max=50"`
}

func (p *CreateAnnouncementPayload) RequiredMessage() string {
	return "Title and content are required"
}

func (p *CreateAnnouncementPayload) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	p.Type = strings.TrimSpace(p.Type)
	if p.Type == "" {
		p.Type = "general"
	}
	return validate.Struct(p)
}

type (
	ListAnnouncementsRequest        = ListRequest[AnnouncementStatuses]
	UpdateAnnouncementStatusRequest = UpdateStatusRequest[AnnouncementStatuses]
)
