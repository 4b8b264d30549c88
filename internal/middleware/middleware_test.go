package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codmart-be/internal/auth"
	"codmart-be/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var requestID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = logger.RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/", nil)

	LoggingMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, requestID)
}

func TestAdminOnly(t *testing.T) {
	mgr := auth.NewManager("test-secret", "")
	guarded := AdminOnly(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("MissingToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer bogus")

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NonAdminRole", func(t *testing.T) {
		token, err := mgr.GenerateToken("shopper")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AdminToken", func(t *testing.T) {
		token, err := mgr.GenerateToken(auth.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimitMiddleware(inner)

	t.Run("StrictTierOnLogin", func(t *testing.T) {
		var lastCode int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
			req.RemoteAddr = "10.1.2.3:5555"

			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			lastCode = rec.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("SeparateBucketsPerIP", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.RemoteAddr = "10.9.9.9:5555"

		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("GeneralTierAllowsBurst", func(t *testing.T) {
		for i := 0; i < burstGeneral; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/", nil)
			req.RemoteAddr = "10.4.4.4:5555"

			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
