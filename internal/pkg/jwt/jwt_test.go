//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-availability/internal/domain/user"
	"hotel-availability/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("unit-test-secret", time.Minute, time.Hour)
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleOwner)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "owner", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := svc.GenerateRefreshToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = svc.ValidateToken(refresh)
		assert.ErrorIs(t, err, jwt.ErrWrongTokenType)

		claims, err := svc.ValidateRefreshToken(refresh)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("unit-test-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Minute, time.Hour)
		token, err := other.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
