// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"errors"
	"net/http"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,max=255"`)
// - Implement Validate() error that trims inputs and runs validator.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// Aliased is implemented by payloads that accept several JSON names for a
// field. The map is keyed by the canonical name; the first alias holding a
// non-empty value wins.
type Aliased interface {
	FieldAliases() map[string][]string
}

// RequiredMessenger lets a payload replace the generic "Validation failed"
// message when a required field is missing.
type RequiredMessenger interface {
	RequiredMessage() string
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

const requiredError = "is required"

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) alias normalization rewrites the JSON body when payload is Aliased.
// 2) c.Bind(payload) populates the struct from path params, query and body.
// 3) payload.Validate() applies validation rules.
// 4) Returns *errs.HTTPError (400) with field-level errors if anything fails.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if aliased, ok := payload.(Aliased); ok {
		if err := normalizeBody(c.Request(), aliased.FieldAliases()); err != nil {
			return errs.NewBadRequestError("Invalid request payload", true, nil, nil, nil)
		}
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		if rm, ok := payload.(RequiredMessenger); ok && hasRequired(fieldErrors) {
			msg = rm.RequiredMessage()
		}
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindError maps echo binder failures to a fixed client message. The
// binder's own text includes decoder offsets and Go type names.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
		return errs.NewBadRequestError("Unsupported content type", true, nil, nil, nil)
	}
	return errs.NewBadRequestError("Invalid request payload", true, nil, nil, nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func hasRequired(fieldErrors []errs.FieldError) bool {
	for _, fe := range fieldErrors {
		if fe.Error == requiredError {
			return true
		}
	}
	return false
}
