package handler

import (
	"net/http"
	"time"

	"app/internal/session"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc       *usecase.AuthUsecase
	sessions *session.Manager
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

// /api/register のリクエストボディ。
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /api/login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// 登録/ログイン成功時に返すユーザー情報
type sessionUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type authResponse struct {
	Success bool        `json:"success"`
	User    sessionUser `json:"user"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, sessionMW echo.MiddlewareFunc) {
	e.POST("/api/register", h.register)
	e.POST("/api/login", h.login)
	e.POST("/api/logout", h.logout, sessionMW)
}

// POST /api/register
func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, "invalid request")
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	//登録と同時にログイン状態にする
	token, expiresAt, err := h.sessions.Issue(user, time.Now())
	if err != nil {
		return fail(c, "internal server error")
	}
	h.sessions.SetCookie(c, token, expiresAt)

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    sessionUser{Name: user.Name, Role: string(user.Role)},
	})
}

// POST /api/login
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, "invalid request")
	}

	user, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	token, expiresAt, err := h.sessions.Issue(user, time.Now())
	if err != nil {
		return fail(c, "internal server error")
	}
	h.sessions.SetCookie(c, token, expiresAt)

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    sessionUser{Name: user.Name, Role: string(user.Role)},
	})
}

// POST /api/logout
func (h *AuthHandler) logout(c echo.Context) error {
	h.sessions.ClearCookie(c)
	return c.JSON(http.StatusOK, OKResponse{Success: true})
}
