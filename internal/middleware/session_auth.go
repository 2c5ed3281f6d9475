package middleware

import (
	"net/http"

	"app/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey   = "user_id"   // int64
	CtxUserNameKey = "user_name" // string
	CtxUserRoleKey = "user_role" // string
)

// 既存クライアント互換のエラー形。HTTPステータスは常に200で返す。
type failResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func failJSON(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, failResponse{Success: false, Message: msg})
}

// セッションCookieのJWTを検証するミドルウェア。
func SessionAuth(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return failJSON(c, "not authenticated")
			}

			claims, err := sessions.Verify(cookie.Value)
			if err != nil {
				return failJSON(c, "not authenticated")
			}

			//contextへ保存
			c.Set(CtxUserIDKey, claims.UserID)
			c.Set(CtxUserNameKey, claims.Name)
			c.Set(CtxUserRoleKey, string(claims.Role))

			return next(c)
		}
	}
}
