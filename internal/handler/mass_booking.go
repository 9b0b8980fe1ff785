package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

type massBookingService interface {
	statusResource[model.MassBooking]
	Create(ctx context.Context, payload *model.CreateMassBookingPayload) (*model.MassBooking, error)
}

type MassBookingHandler struct {
	statusHandler[model.MassBooking, model.MassBookingStatuses]
	service massBookingService
}

func NewMassBookingHandler(s *server.Server, service massBookingService) *MassBookingHandler {
	return &MassBookingHandler{
		statusHandler: statusHandler[model.MassBooking, model.MassBookingStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *MassBookingHandler) Create(c echo.Context, req *model.CreateMassBookingPayload) (*model.MassBooking, error) {
	return h.service.Create(c.Request().Context(), req)
}
