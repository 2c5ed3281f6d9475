package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc *usecase.AdminUsecase
}

// DI
func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// statsだけはエラー形が{"error": ...}（既存クライアント互換）。
type statsErrorResponse struct {
	Error string `json:"error"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, sessionMW echo.MiddlewareFunc) {
	e.GET("/api/admin/stats", h.stats, sessionMW)
}

// GET /api/admin/stats
func (h *AdminHandler) stats(c echo.Context) error {
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)
	if role != string(model.RoleAdmin) {
		return c.JSON(http.StatusOK, statsErrorResponse{Error: "not authorized"})
	}

	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, statsErrorResponse{Error: "internal server error"})
	}

	return c.JSON(http.StatusOK, out)
}
