package handler

import (
	"errors"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 既存クライアント互換のレスポンス形。
// エラーでもHTTPステータスは常に200で、successフラグとメッセージで伝える。
type FailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OKResponse struct {
	Success bool `json:"success"`
}

func fail(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, FailResponse{Success: false, Message: msg})
}

// usecaseのエラーを固定メッセージに変換する。
// 内部の失敗理由はここでは出さない（ログにだけ残っている）。
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return fail(c, "invalid request")
	case errors.Is(err, usecase.ErrEmailTaken):
		return fail(c, "email already registered")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fail(c, "invalid credentials")
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return fail(c, "not authenticated")
	case errors.Is(err, usecase.ErrForbidden):
		return fail(c, "not authorized")
	default:
		return fail(c, "internal server error")
	}
}
