package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

type testimonyService interface {
	statusResource[model.Testimony]
	Create(ctx context.Context, payload *model.CreateTestimonyPayload) (*model.Testimony, error)
	ListApproved(ctx context.Context) ([]model.Testimony, error)
}

type TestimonyHandler struct {
	statusHandler[model.Testimony, model.TestimonyStatuses]
	service testimonyService
}

func NewTestimonyHandler(s *server.Server, service testimonyService) *TestimonyHandler {
	return &TestimonyHandler{
		statusHandler: statusHandler[model.Testimony, model.TestimonyStatuses]{Handler: NewHandler(s), resource: service},
		service:       service,
	}
}

func (h *TestimonyHandler) Create(c echo.Context, req *model.CreateTestimonyPayload) (*model.Testimony, error) {
	return h.service.Create(c.Request().Context(), req)
}

// ListApproved is the public wall of testimonies.
func (h *TestimonyHandler) ListApproved(c echo.Context, _ *model.EmptyRequest) ([]model.Testimony, error) {
	return h.service.ListApproved(c.Request().Context())
}
