//go:build unit

package jwt

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := NewService("secret", time.Hour, 24*time.Hour)
	id := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(id, staff.RoleClerk)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.StaffID)
		assert.Equal(t, "clerk", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token type", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(id, staff.RoleManager)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewService("secret", time.Minute, time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := old.GenerateAccessToken(id, staff.RoleClerk)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken(id, staff.RoleClerk)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
