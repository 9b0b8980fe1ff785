package model

import (
	"strings"
	"time"
)

const (
	LivestreamStatusUpcoming = "upcoming"
	LivestreamStatusLive     = "live"
	LivestreamStatusEnded    = "ended"
)

type LivestreamStatuses struct{}

func (LivestreamStatuses) Values() []string {
	return []string{LivestreamStatusUpcoming, LivestreamStatusLive, LivestreamStatusEnded}
}

type Livestream struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StreamURL   string    `json:"stream_url"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateLivestreamPayload struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description"`
	StreamURL   string    `json:"stream_url" validate:"required,url"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

func (p *CreateLivestreamPayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"stream_url":   {"stream_url", "streamUrl"},
		"scheduled_at": {"scheduled_at", "scheduledAt"},
	}
}

func (p *CreateLivestreamPayload) RequiredMessage() string {
	return "Title, stream URL and schedule are required"
}

func (p *CreateLivestreamPayload) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.StreamURL = strings.TrimSpace(p.StreamURL)
	p.Description = NullIfEmpty(p.Description)
	return validate.Struct(p)
}

type (
	ListLivestreamsRequest        = ListRequest[LivestreamStatuses]
	UpdateLivestreamStatusRequest = UpdateStatusRequest[LivestreamStatuses]
)
