package model

import (
	"strings"
	"time"
)

const AdminRole = "admin"

// Admin is the single role allowed to read and moderate submissions.
type Admin struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Email        *string    `json:"email"`
	Role         string     `json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *LoginPayload) RequiredMessage() string {
	return "Username and password are required"
}

func (p *LoginPayload) Validate() error {
	p.Username = strings.TrimSpace(p.Username)
	return validate.Struct(p)
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     *Admin    `json:"admin"`
}

// Dashboard aggregates the moderation queues shown on the admin landing page.
type Dashboard struct {
	Prayers      Stats     `json:"prayers"`
	Testimonies  Stats     `json:"testimonies"`
	Donations    Stats     `json:"donations"`
	MassBookings Stats     `json:"mass_bookings"`
	GeneratedAt  time.Time `json:"generated_at"`
}
