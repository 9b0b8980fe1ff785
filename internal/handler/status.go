package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/labstack/echo/v4"
)

// statusResource is the admin surface every status-bearing service offers.
type statusResource[T any] interface {
	List(ctx context.Context, status string) ([]T, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*T, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResponse[T], error)
	Stats(ctx context.Context) (model.Stats, error)
}

// statusHandler serves list, stats, update-status and delete for one resource.
type statusHandler[T any, S model.StatusSet] struct {
	Handler
	resource statusResource[T]
}

func (h *statusHandler[T, S]) List(c echo.Context, req *model.ListRequest[S]) ([]T, error) {
	return h.resource.List(c.Request().Context(), req.Status)
}

func (h *statusHandler[T, S]) Stats(c echo.Context, _ *model.EmptyRequest) (model.Stats, error) {
	return h.resource.Stats(c.Request().Context())
}

func (h *statusHandler[T, S]) UpdateStatus(c echo.Context, req *model.UpdateStatusRequest[S]) (*T, error) {
	return h.resource.UpdateStatus(c.Request().Context(), req.ID, req.Status)
}

func (h *statusHandler[T, S]) Delete(c echo.Context, req *model.IDRequest) (*model.DeleteResponse[T], error) {
	return h.resource.Delete(c.Request().Context(), req.ID)
}
