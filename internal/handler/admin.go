package handler

import (
	"context"

	"github.com/deppfellow/shrine-api/internal/errs"
	"github.com/deppfellow/shrine-api/internal/middleware"
	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/labstack/echo/v4"
)

type authService interface {
	Login(ctx context.Context, payload *model.LoginPayload) (*model.LoginResponse, error)
	Me(ctx context.Context, adminID int64) (*model.Admin, error)
}

type dashboardService interface {
	Get(ctx context.Context) (*model.Dashboard, error)
}

// AdminHandler serves login and the authenticated admin's own endpoints.
type AdminHandler struct {
	Handler
	auth      authService
	dashboard dashboardService
}

func NewAdminHandler(s *server.Server, auth authService, dashboard dashboardService) *AdminHandler {
	return &AdminHandler{
		Handler:   NewHandler(s),
		auth:      auth,
		dashboard: dashboard,
	}
}

func (h *AdminHandler) Login(c echo.Context, req *model.LoginPayload) (*model.LoginResponse, error) {
	res, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Info().
		Int64("admin_id", res.Admin.ID).
		Msg("admin logged in")
	return res, nil
}

func (h *AdminHandler) Me(c echo.Context, _ *model.EmptyRequest) (*model.Admin, error) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Authentication required", true)
	}
	return h.auth.Me(c.Request().Context(), claims.AdminID)
}

func (h *AdminHandler) Dashboard(c echo.Context, _ *model.EmptyRequest) (*model.Dashboard, error) {
	return h.dashboard.Get(c.Request().Context())
}
