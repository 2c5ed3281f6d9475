package middleware

import (
	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleがadminかどうかを確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return failJSON(c, "not authenticated")
			}

			//userは拒否、adminだけ許可
			if role != string(model.RoleAdmin) {
				return failJSON(c, "not authorized")
			}

			return next(c)
		}
	}
}
