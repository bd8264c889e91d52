//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/jwt"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("middleware-secret", time.Minute, time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	authed := r.Group("", auth.RequireAuth())
	authed.GET("/whoami", func(c *gin.Context) {
		id, _ := middleware.GetStaffID(c)
		role, _ := middleware.GetStaffRole(c)
		c.JSON(http.StatusOK, gin.H{"staff_id": id.String(), "role": role.String()})
	})
	authed.GET("/reports", auth.RequireRoleAtLeast(staff.RoleManager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	router, svc := newAuthRouter(t)
	staffID := uuid.New()

	access, err := svc.GenerateAccessToken(staffID, staff.RoleClerk)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(staffID, staff.RoleClerk)
	require.NoError(t, err)

	cases := []struct {
		name       string
		token      string
		wantStatus int
		wantMsg    string
	}{
		{name: "access token", token: access, wantStatus: http.StatusOK},
		{name: "missing token", token: "", wantStatus: http.StatusUnauthorized, wantMsg: "Access token required"},
		{name: "garbage token", token: "not-a-jwt", wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
		{name: "refresh token cannot open a session", token: refresh, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, tc.token)
			if tc.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			assert.Equal(t, staffID.String(), body["staff_id"])
			assert.Equal(t, "clerk", body["role"])
		})
	}
}

func TestRequireRoleAtLeast(t *testing.T) {
	router, svc := newAuthRouter(t)

	cases := []struct {
		role       staff.Role
		wantStatus int
	}{
		{role: staff.RoleClerk, wantStatus: http.StatusForbidden},
		{role: staff.RoleManager, wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			token, err := svc.GenerateAccessToken(uuid.New(), tc.role)
			require.NoError(t, err)

			w := httptest.PerformRequest(t, router, http.MethodGet, "/reports", nil, token)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestRateLimiters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("login limit trips after the quota", func(t *testing.T) {
		limiters, err := middleware.NewRateLimiters(config.RateLimitConfig{Rate: "100-M", LoginRate: "2-M"}, nil)
		require.NoError(t, err)

		r := gin.New()
		r.POST("/login", limiters.Login, func(c *gin.Context) { c.Status(http.StatusOK) })

		for range 2 {
			w := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
			require.Equal(t, http.StatusOK, w.Code)
		}
		w := httptest.PerformRequest(t, r, http.MethodPost, "/login", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("empty rate disables limiting", func(t *testing.T) {
		limiters, err := middleware.NewRateLimiters(config.RateLimitConfig{}, nil)
		require.NoError(t, err)

		r := gin.New()
		r.GET("/ping", limiters.API, func(c *gin.Context) { c.Status(http.StatusOK) })

		for range 5 {
			w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
			require.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("bad rate format is rejected", func(t *testing.T) {
		_, err := middleware.NewRateLimiters(config.RateLimitConfig{Rate: "lots"}, nil)
		require.Error(t, err)
	})
}
