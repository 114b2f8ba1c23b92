package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mieltoinc/yclistdedalus/internal/api"
	"github.com/mieltoinc/yclistdedalus/internal/config"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
)

func newMiddlewareRouter(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/panic", func(*gin.Context) { panic("boom") })
	return router
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(t, api.RequestIDMiddleware(logger.NewNop()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	// uuid string form
	assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
}

func TestRequestIDMiddleware_PreservesInboundID(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(t, api.RequestIDMiddleware(logger.NewNop()))
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "trace-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get("X-Request-ID"))
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(t, api.RecoveryMiddleware(logger.NewNop()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestCORSMiddleware(t *testing.T) {
	t.Parallel()

	cfg := config.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://app.example.com"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         60,
	}
	router := newMiddlewareRouter(t, api.CORSMiddleware(cfg))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"allowed origin", http.MethodGet, "https://app.example.com", "https://app.example.com", http.StatusOK},
		{"foreign origin", http.MethodGet, "https://evil.example.com", "", http.StatusOK},
		{"same origin", http.MethodGet, "", "*", http.StatusOK},
		{"preflight", http.MethodOptions, "https://app.example.com", "https://app.example.com", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, "/test", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "60", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
