package model_test

import (
	"testing"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestCreatePrayerPayload_TrimsAndNulls(t *testing.T) {
	p := &model.CreatePrayerPayload{
		Name:   "  Maria  ",
		Email:  ptr("   "),
		Phone:  ptr(" 0800 "),
		Prayer: " healing ",
	}

	require.NoError(t, p.Validate())
	assert.Equal(t, "Maria", p.Name)
	assert.Equal(t, "healing", p.Prayer)
	assert.Nil(t, p.Email)
	assert.Equal(t, "0800", *p.Phone)
}

func TestCreatePrayerPayload_WhitespaceNameRejected(t *testing.T) {
	p := &model.CreatePrayerPayload{Name: "   ", Prayer: "peace"}
	assert.Error(t, p.Validate())
}

func TestCreatePrayerPayload_Aliases(t *testing.T) {
	aliases := (&model.CreatePrayerPayload{}).FieldAliases()
	assert.Equal(t, []string{"prayer_intention", "prayer"}, aliases["prayer"])
}

func TestUpdateStatusRequest(t *testing.T) {
	ok := &model.UpdatePrayerStatusRequest{ID: 1, Status: " read "}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "read", ok.Status)

	bad := &model.UpdatePrayerStatusRequest{ID: 1, Status: "archived"}
	err := bad.Validate()
	var custom validation.CustomValidationErrors
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "status", custom[0].Field)
	assert.Equal(t, "must be one of: unread read", custom[0].Message)

	missing := &model.UpdateTestimonyStatusRequest{ID: 0}
	require.ErrorAs(t, missing.Validate(), &custom)
	assert.Len(t, custom, 2)
}

func TestListRequest(t *testing.T) {
	assert.NoError(t, (&model.ListDonationsRequest{}).Validate())
	assert.NoError(t, (&model.ListDonationsRequest{Status: "completed"}).Validate())
	assert.Error(t, (&model.ListDonationsRequest{Status: "unread"}).Validate())
}

func TestNewStats_ZeroFilled(t *testing.T) {
	stats := model.NewStats[model.MassBookingStatuses]()
	assert.Equal(t, model.Stats{"total": 0, "pending": 0, "confirmed": 0, "cancelled": 0}, stats)
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, "unread", model.DefaultStatus[model.PrayerStatuses]())
	assert.Equal(t, "pending", model.DefaultStatus[model.TestimonyStatuses]())
	assert.Equal(t, "upcoming", model.DefaultStatus[model.LivestreamStatuses]())
}

func TestCreateMassBookingPayload(t *testing.T) {
	p := &model.CreateMassBookingPayload{
		Name:          "Ana",
		StartDate:     "2025-12-24",
		IntentionType: "thanksgiving",
	}
	require.NoError(t, p.Validate())
	assert.Equal(t, int32(1), p.NumberOfDays)
	assert.Equal(t, 2025, p.ParsedStartDate().Year())

	bad := &model.CreateMassBookingPayload{Name: "Ana", StartDate: "24/12/2025", IntentionType: "x"}
	assert.Error(t, bad.Validate())
}

func TestCreateDonationPayload_AmountMustBePositive(t *testing.T) {
	p := &model.CreateDonationPayload{DonorName: "Ana", Amount: -5, Purpose: "General Offering"}
	assert.Error(t, p.Validate())
}
