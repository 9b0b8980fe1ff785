// Package model holds the domain records persisted by the repositories and
// the typed request payloads handlers bind and validate.
package model

import (
	"fmt"
	"strings"

	"github.com/deppfellow/shrine-api/internal/validation"
)

var validate = validation.New()

// StatusSet enumerates the statuses a resource accepts. The first value is
// the status new records start with.
type StatusSet interface {
	Values() []string
}

// ValidStatus reports whether status belongs to S.
func ValidStatus[S StatusSet](status string) bool {
	var set S
	for _, v := range set.Values() {
		if v == status {
			return true
		}
	}
	return false
}

// DefaultStatus returns the status a freshly created record of S gets.
func DefaultStatus[S StatusSet]() string {
	var set S
	return set.Values()[0]
}

func statusError[S StatusSet]() validation.CustomValidationError {
	var set S
	return validation.CustomValidationError{
		Field:   "status",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(set.Values(), " ")),
	}
}

// Stats maps each status to its record count, plus "total".
//
//	{"total": 3, "unread": 2, "read": 1}
type Stats map[string]int64

// NewStats returns zero-filled stats for S.
func NewStats[S StatusSet]() Stats {
	var set S
	stats := Stats{"total": 0}
	for _, v := range set.Values() {
		stats[v] = 0
	}
	return stats
}

// IDRequest addresses a single record by its path id. The id never comes
// from the body.
type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error {
	return validate.Struct(r)
}

// ListRequest filters a listing by status; empty means all records.
type ListRequest[S StatusSet] struct {
	Status string `query:"status" json:"-"`
}

func (r *ListRequest[S]) Validate() error {
	r.Status = strings.TrimSpace(r.Status)
	if r.Status != "" && !ValidStatus[S](r.Status) {
		return validation.CustomValidationErrors{statusError[S]()}
	}
	return nil
}

// UpdateStatusRequest is the body of PATCH/PUT /:id/status.
//
// Any allowed status may follow any other; there is no transition table.
type UpdateStatusRequest[S StatusSet] struct {
	ID     int64  `param:"id" json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest[S]) Validate() error {
	var problems validation.CustomValidationErrors

	if r.ID < 1 {
		problems = append(problems, validation.CustomValidationError{Field: "id", Message: "must be at least 1"})
	}

	r.Status = strings.TrimSpace(r.Status)
	switch {
	case r.Status == "":
		problems = append(problems, validation.CustomValidationError{Field: "status", Message: "is required"})
	case !ValidStatus[S](r.Status):
		problems = append(problems, statusError[S]())
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

// RequiredMessage is the client message when status is missing.
func (r *UpdateStatusRequest[S]) RequiredMessage() string {
	return "Status is required"
}

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// DeleteResponse confirms a hard delete and echoes the removed record.
type DeleteResponse[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// NullIfEmpty trims an optional string and maps blank values to nil,
// so optional columns are stored as NULL rather than "".
func NullIfEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
