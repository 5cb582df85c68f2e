package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier-admin-service/internal/domain"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := tm.Issue(&domain.Manager{
		ManagerID: 5, Email: "ops@example.com", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.ManagerID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ops@example.com", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm, err := NewTokenManager("secret-a", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := tm.Issue(&domain.Manager{ManagerID: 1, Role: domain.RoleSupport})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm, err := NewTokenManager("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := tm.Issue(&domain.Manager{ManagerID: 1, Role: domain.RoleSupport})
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
