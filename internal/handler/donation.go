package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

type donationService interface {
	statusResource[model.Donation]
	Create(ctx context.Context, payload *model.CreateDonationPayload) (*model.Donation, error)
	Purposes() []string
}

type DonationHandler struct {
	statusHandler[model.Donation, model.DonationStatuses]
	service donationService
}

func NewDonationHandler(s *server.Server, service donationService) *DonationHandler {
	return &DonationHandler{
		statusHandler: statusHandler[model.Donation, model.DonationStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *DonationHandler) Create(c echo.Context, req *model.CreateDonationPayload) (*model.Donation, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *DonationHandler) Purposes(c echo.Context, _ *model.EmptyRequest) ([]string, error) {
	return h.service.Purposes(), nil
}
