package model

import (
	"strings"
	"time"
)

const (
	TestimonyStatusPending  = "pending"
	TestimonyStatusApproved = "approved"
	TestimonyStatusRejected = "rejected"
)

// TestimonyStatuses is the moderation workflow of testimonies.
type TestimonyStatuses struct{}

func (TestimonyStatuses) Values() []string {
	return []string{TestimonyStatusPending, TestimonyStatusApproved, TestimonyStatusRejected}
}

// Testimony is shown publicly only once approved.
type Testimony struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Testimony string    `json:"testimony"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTestimonyPayload struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     *string `json:"email" validate:"omitempty,max=100"`
	Testimony string  `json:"testimony" validate:"required"`
}

func (p *CreateTestimonyPayload) FieldAliases() map[string][]string {
	return map[string][]string{
		"testimony": {"testimony", "content"},
	}
}

func (p *CreateTestimonyPayload) RequiredMessage() string {
	return "Name and testimony are required"
}

func (p *CreateTestimonyPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Testimony = strings.TrimSpace(p.Testimony)
	p.Email = NullIfEmpty(p.Email)
	return validate.Struct(p)
}

type (
	ListTestimoniesRequest       = ListRequest[TestimonyStatuses]
	UpdateTestimonyStatusRequest = UpdateStatusRequest[TestimonyStatuses]
)
