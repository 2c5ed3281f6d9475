package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// セッションCookieの名前
const CookieName = "vinylvibe_session"

// セッションが無い/壊れている/期限切れを統一
var ErrInvalidSession = errors.New("invalid session")

// Cookieから復元したログイン中ユーザー
type Claims struct {
	UserID int64
	Name   string
	Role   model.Role
}

// ManagerはセッションJWTの発行・検証とCookieの出し入れを行う。
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Issueはユーザーのセッショントークンを発行する。
func (m *Manager) Issue(user *model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.ttl)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"name": user.Name,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verifyはトークンを検証してClaimsを返す。
func (m *Manager) Verify(rawToken string) (Claims, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Claims{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidSession
	}

	userID, err := parseUserID(claims["sub"])
	if err != nil || userID <= 0 {
		return Claims{}, ErrInvalidSession
	}

	name, _ := claims["name"].(string)

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrInvalidSession
	}

	return Claims{
		UserID: userID,
		Name:   name,
		Role:   model.Role(role),
	}, nil
}

// セッショントークンをCookieにセット。
func (m *Manager) SetCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

// セッションCookieを破棄（ログアウト）。
func (m *Manager) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// subをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
