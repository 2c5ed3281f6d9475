package middleware

import (
	"time"

	"app/internal/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestObserverは全リクエストにrequest_idを付け、
// アクセスログとメトリクス（件数・レイテンシ）を記録する。
func RequestObserver(log *zap.Logger, m *metrics.HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			status := c.Response().Status
			path := c.Path()
			if path == "" {
				path = req.URL.Path
			}

			m.Observe(req.Method, path, status, elapsed)

			log.Info("request",
				zap.String("request_id", rid),
				zap.String("method", req.Method),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("elapsed", elapsed),
			)

			return err
		}
	}
}
