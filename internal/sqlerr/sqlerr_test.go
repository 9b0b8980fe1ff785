package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingular(t *testing.T) {
	assert.Equal(t, "prayer_request", singular("prayer_requests"))
	assert.Equal(t, "testimony", singular("testimonies"))
	assert.Equal(t, "gallery", singular("gallery"))
	assert.Equal(t, "s", singular("s"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "username", extractColumnForUniqueViolation("unique_admins_username"))
	assert.Equal(t, "username", extractColumnForUniqueViolation("admins_username_key"))
	assert.Empty(t, extractColumnForUniqueViolation("admins_pkey"))
	assert.Empty(t, extractColumnForUniqueViolation(""))
}

func TestMapCodeAndSeverity(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("XX000"))

	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("SOMETHING"))
}

func TestNotFound(t *testing.T) {
	err := NotFound("prayer_requests")

	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("get: %w", err)))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.Equal(t, "prayer_requests", tableFromNotFound(err.Error()))
}

func httpError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleError(t *testing.T) {
	t.Run("passes http errors through", func(t *testing.T) {
		original := errs.NewForbiddenError("nope", true)
		assert.Same(t, original, HandleError(original))
	})

	t.Run("not found names the entity", func(t *testing.T) {
		got := httpError(t, HandleError(NotFound("mass_bookings")))
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, "Mass Booking not found", got.Message)
		assert.Equal(t, "MASS_BOOKING_NOT_FOUND", got.Code)
	})

	t.Run("bare no rows", func(t *testing.T) {
		got := httpError(t, HandleError(pgx.ErrNoRows))
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, "Resource not found", got.Message)
	})

	t.Run("unique violation", func(t *testing.T) {
		got := httpError(t, HandleError(&pgconn.PgError{
			Code:           "23505",
			Message:        "duplicate key value violates unique constraint",
			TableName:      "admins",
			ConstraintName: "admins_username_key",
		}))
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "A Admin with this Username already exists", got.Message)
		assert.Equal(t, "ADMIN_ALREADY_EXISTS", got.Code)
	})

	t.Run("not null violation lists the field", func(t *testing.T) {
		got := httpError(t, HandleError(&pgconn.PgError{
			Code:       "23502",
			TableName:  "donations",
			ColumnName: "donor_name",
		}))
		assert.Equal(t, "The Donor Name is required", got.Message)
		assert.Equal(t, "DONATION_REQUIRED", got.Code)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "donor_name", got.Errors[0].Field)
	})

	t.Run("check violation", func(t *testing.T) {
		got := httpError(t, HandleError(&pgconn.PgError{
			Code:      "23514",
			TableName: "prayer_requests",
		}))
		assert.Equal(t, "PRAYER_REQUEST_INVALID", got.Code)
		assert.Equal(t, "One or more values do not meet required conditions", got.Message)
	})

	t.Run("other driver errors stay generic", func(t *testing.T) {
		got := httpError(t, HandleError(&pgconn.PgError{
			Code:    "42P01",
			Message: `relation "prayer_requests" does not exist`,
		}))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.NotContains(t, got.Message, "prayer_requests")
	})

	t.Run("unknown errors stay generic", func(t *testing.T) {
		got := httpError(t, HandleError(errors.New("dial tcp: connection refused")))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, "Internal Server Error", got.Message)
	})
}
