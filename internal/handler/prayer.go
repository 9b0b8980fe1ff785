package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

type prayerService interface {
	statusResource[model.Prayer]
	Create(ctx context.Context, payload *model.CreatePrayerPayload) (*model.Prayer, error)
}

type PrayerHandler struct {
	statusHandler[model.Prayer, model.PrayerStatuses]
	service prayerService
}

func NewPrayerHandler(s *server.Server, service prayerService) *PrayerHandler {
	return &PrayerHandler{
		statusHandler: statusHandler[model.Prayer, model.PrayerStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *PrayerHandler) Create(c echo.Context, req *model.CreatePrayerPayload) (*model.Prayer, error) {
	return h.service.Create(c.Request().Context(), req)
}
