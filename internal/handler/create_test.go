package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockStatusResource covers the admin methods shared by every status-tracked service.
type mockStatusResource[T any] struct{ mock.Mock }

func (m *mockStatusResource[T]) List(ctx context.Context, status string) ([]T, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockStatusResource[T]) UpdateStatus(ctx context.Context, id int64, status string) (*T, error) {
	args := m.Called(ctx, id, status)
	if v, _ := args.Get(0).(*T); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatusResource[T]) Delete(ctx context.Context, id int64) (*model.DeleteResponse[T], error) {
	args := m.Called(ctx, id)
	if v, _ := args.Get(0).(*model.DeleteResponse[T]); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStatusResource[T]) Stats(ctx context.Context) (model.Stats, error) {
	args := m.Called(ctx)
	if v, _ := args.Get(0).(model.Stats); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTestimonyService struct {
	mockStatusResource[model.Testimony]
}

func (m *mockTestimonyService) Create(ctx context.Context, payload *model.CreateTestimonyPayload) (*model.Testimony, error) {
	args := m.Called(ctx, payload)
	if v, _ := args.Get(0).(*model.Testimony); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTestimonyService) ListApproved(ctx context.Context) ([]model.Testimony, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Testimony), args.Error(1)
}

type mockDonationService struct {
	mockStatusResource[model.Donation]
}

func (m *mockDonationService) Create(ctx context.Context, payload *model.CreateDonationPayload) (*model.Donation, error) {
	args := m.Called(ctx, payload)
	if v, _ := args.Get(0).(*model.Donation); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDonationService) Purposes() []string {
	return model.DonationPurposes
}

type mockMassBookingService struct {
	mockStatusResource[model.MassBooking]
}

func (m *mockMassBookingService) Create(ctx context.Context, payload *model.CreateMassBookingPayload) (*model.MassBooking, error) {
	args := m.Called(ctx, payload)
	if v, _ := args.Get(0).(*model.MassBooking); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateTestimony(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
		match   func(*model.CreateTestimonyPayload) bool
	}{
		{
			name:   "canonical field",
			body:   `{"name":"Ana","testimony":"My son walked again"}`,
			status: http.StatusCreated,
			match: func(p *model.CreateTestimonyPayload) bool {
				return p.Name == "Ana" && p.Testimony == "My son walked again"
			},
		},
		{
			name:   "content alias",
			body:   `{"name":"Ana","email":"","content":" Answered prayer "}`,
			status: http.StatusCreated,
			match: func(p *model.CreateTestimonyPayload) bool {
				return p.Testimony == "Answered prayer" && p.Email == nil
			},
		},
		{
			name:    "missing testimony",
			body:    `{"name":"Ana","content":"  "}`,
			status:  http.StatusBadRequest,
			message: "Name and testimony are required",
		},
		{
			name:    "missing name",
			body:    `{"testimony":"Grateful"}`,
			status:  http.StatusBadRequest,
			message: "Name and testimony are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer()
			svc := &mockTestimonyService{}
			h := NewTestimonyHandler(s, svc)
			e := newEcho(s)
			e.POST("/api/testimonies", Handle(h.Create, http.StatusCreated))

			if tt.match != nil {
				svc.On("Create", mock.Anything, mock.MatchedBy(tt.match)).
					Return(&model.Testimony{ID: 1, Status: model.TestimonyStatusPending}, nil)
			}

			rec := do(e, http.MethodPost, "/api/testimonies", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeError(t, rec).Message)
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateDonation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
		match   func(*model.CreateDonationPayload) bool
	}{
		{
			name:   "canonical fields",
			body:   `{"donor_name":"Pedro","amount":500,"purpose":"Building Fund"}`,
			status: http.StatusCreated,
			match: func(p *model.CreateDonationPayload) bool {
				return p.DonorName == "Pedro" && p.Amount == 500 && p.Purpose == "Building Fund"
			},
		},
		{
			name:   "name alias",
			body:   `{"name":" Pedro ","amount":25.5,"purpose":"Mass Offering","paymentReference":"REF-1"}`,
			status: http.StatusCreated,
			match: func(p *model.CreateDonationPayload) bool {
				return p.DonorName == "Pedro" && p.PaymentReference != nil && *p.PaymentReference == "REF-1"
			},
		},
		{
			name:    "missing amount",
			body:    `{"donor_name":"Pedro","purpose":"Building Fund"}`,
			status:  http.StatusBadRequest,
			message: "Donor name, amount and purpose are required",
		},
		{
			name:    "missing donor",
			body:    `{"amount":10,"purpose":"Building Fund"}`,
			status:  http.StatusBadRequest,
			message: "Donor name, amount and purpose are required",
		},
		{
			name:   "negative amount",
			body:   `{"donor_name":"Pedro","amount":-5,"purpose":"Building Fund"}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer()
			svc := &mockDonationService{}
			h := NewDonationHandler(s, svc)
			e := newEcho(s)
			e.POST("/api/donations", Handle(h.Create, http.StatusCreated))

			if tt.match != nil {
				svc.On("Create", mock.Anything, mock.MatchedBy(tt.match)).
					Return(&model.Donation{ID: 1, Status: model.DonationStatusPending}, nil)
			}

			rec := do(e, http.MethodPost, "/api/donations", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			if tt.match == nil {
				if tt.message != "" {
					assert.Equal(t, tt.message, decodeError(t, rec).Message)
				}
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateMassBooking(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
		match   func(*model.CreateMassBookingPayload) bool
	}{
		{
			name:   "snake case with default days",
			body:   `{"name":"Lucia","start_date":"2025-02-01","intention_type":"Thanksgiving"}`,
			status: http.StatusCreated,
			match: func(p *model.CreateMassBookingPayload) bool {
				return p.Name == "Lucia" && p.StartDate == "2025-02-01" && p.NumberOfDays == 1
			},
		},
		{
			name:   "camel case aliases",
			body:   `{"name":"Lucia","startDate":"2025-02-01","preferredTime":"07:30","intentionType":"Souls","numberOfDays":3,"totalAmount":300}`,
			status: http.StatusCreated,
			match: func(p *model.CreateMassBookingPayload) bool {
				return p.IntentionType == "Souls" && p.NumberOfDays == 3 && p.TotalAmount == 300 &&
					p.PreferredTime != nil && *p.PreferredTime == "07:30"
			},
		},
		{
			name:    "missing intention type",
			body:    `{"name":"Lucia","startDate":"2025-02-01"}`,
			status:  http.StatusBadRequest,
			message: "Name, start date and intention type are required",
		},
		{
			name:   "malformed start date",
			body:   `{"name":"Lucia","start_date":"01/02/2025","intention_type":"Souls"}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer()
			svc := &mockMassBookingService{}
			h := NewMassBookingHandler(s, svc)
			e := newEcho(s)
			e.POST("/api/mass-bookings", Handle(h.Create, http.StatusCreated))

			if tt.match != nil {
				svc.On("Create", mock.Anything, mock.MatchedBy(tt.match)).
					Return(&model.MassBooking{ID: 1, Status: model.MassBookingStatusPending}, nil)
			}

			rec := do(e, http.MethodPost, "/api/mass-bookings", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			if tt.match == nil {
				if tt.message != "" {
					assert.Equal(t, tt.message, decodeError(t, rec).Message)
				}
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			svc.AssertExpectations(t)
		})
	}
}
