package server

import (
	"app/internal/handler"
	"app/internal/metrics"
	"app/internal/middleware"
	"app/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlersはルート登録に必要なhandler一式。
type Handlers struct {
	Auth  *handler.AuthHandler
	Vinyl *handler.VinylHandler
	Order *handler.OrderHandler
	Admin *handler.AdminHandler
}

func Start(
	addr string,
	log *zap.Logger,
	m *metrics.HTTPMetrics,
	sessions *session.Manager,
	h Handlers,
) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestObserver(log, m))

	RegisterRoutes(e, m, sessions, h)

	log.Info("starting server", zap.String("addr", addr))
	return e.Start(addr)
}
