package session_test

import (
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/session"

	"github.com/stretchr/testify/assert"
)

// Test: 発行したトークンを検証するとClaimsが復元できる
func TestSessionRoundTrip(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour, false)

	user := &model.User{ID: 7, Name: "Alice", Role: model.RoleAdmin}
	token, expiresAt, err := m.Issue(user, time.Now())

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

// Test: 期限切れトークンは拒否
func TestSessionExpiredTokenRejected(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour, false)

	user := &model.User{ID: 7, Name: "Alice", Role: model.RoleUser}
	token, _, err := m.Issue(user, time.Now().Add(-2*time.Hour))
	assert.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

// Test: 別シークレットで署名されたトークンは拒否
func TestSessionWrongSecretRejected(t *testing.T) {
	issuer := session.NewManager("secret-a", time.Hour, false)
	verifier := session.NewManager("secret-b", time.Hour, false)

	user := &model.User{ID: 7, Name: "Alice", Role: model.RoleUser}
	token, _, err := issuer.Issue(user, time.Now())
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

// Test: 壊れたトークンは拒否
func TestSessionGarbageTokenRejected(t *testing.T) {
	m := session.NewManager("test-secret", time.Hour, false)

	_, err := m.Verify("not-a-jwt")
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}
