//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-availability/internal/domain/user"
	"hotel-availability/internal/handler/middleware"
	"hotel-availability/internal/pkg/jwt"
	"hotel-availability/internal/usecase"
	"hotel-availability/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.UserID, "role": actor.Role})
	})
	router.GET("/owner-only", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, svc
}

func TestRequireAuth(t *testing.T) {
	router, svc := newAuthRouter(t)
	userID := uuid.New()

	t.Run("Bearerトークンで認証", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleGuest)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body struct {
			ID   uuid.UUID `json:"id"`
			Role string    `json:"role"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID, body.ID)
		assert.Equal(t, "guest", body.Role)
	})

	t.Run("Cookieのトークンを優先", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleOwner)
		require.NoError(t, err)

		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: "access_token", Value: token}}, "garbage")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("トークンなしは401", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("リフレッシュトークンは使えない", func(t *testing.T) {
		refresh, err := svc.GenerateRefreshToken(userID, user.RoleGuest)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, refresh)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	router, svc := newAuthRouter(t)

	tests := []struct {
		name     string
		role     user.Role
		expected int
	}{
		{name: "ゲストNG", role: user.RoleGuest, expected: http.StatusForbidden},
		{name: "オーナーOK", role: user.RoleOwner, expected: http.StatusNoContent},
		{name: "管理者OK", role: user.RoleAdmin, expected: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tt.role)
			require.NoError(t, err)

			w := httptest.PerformRequest(t, router, http.MethodGet, "/owner-only", nil, token)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
