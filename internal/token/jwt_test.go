package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickethub-io/tickethub/internal/domain"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	user := &domain.User{
		ID:      "11111111-1111-1111-1111-111111111111",
		Email:   "alice@example.com",
		IsAdmin: true,
	}

	signed, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	principal, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, user.Email, principal.Email)
	assert.True(t, principal.IsAdmin)
}

func TestManager_VerifyExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue(&domain.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue(&domain.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
