package server

import (
	"net/http"

	"app/internal/metrics"
	"app/internal/middleware"
	"app/internal/session"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, m *metrics.HTTPMetrics, sessions *session.Manager, h Handlers) {
	sessionMW := middleware.SessionAuth(sessions)
	adminMW := middleware.AdminRoleGuard()

	h.Auth.RegisterRoutes(e, sessionMW)
	h.Vinyl.RegisterRoutes(e, sessionMW, adminMW)
	h.Order.RegisterRoutes(e, sessionMW)
	h.Admin.RegisterRoutes(e, sessionMW)

	// HEALTHCHECK
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}
