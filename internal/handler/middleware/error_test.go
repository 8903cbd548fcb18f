//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/handler/middleware"
	"temple-booking/internal/pkg/config"
	"temple-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	engine.GET("/x", h)
	return engine
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		handler  gin.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "conflict keeps its message",
			handler:  func(c *gin.Context) { httperr.Abort(c, errs.Conflict("hall is already booked")) },
			wantCode: http.StatusConflict,
			wantBody: `{"error":{"message":"hall is already booked"}}`,
		},
		{
			name:     "storage failure is hidden",
			handler:  func(c *gin.Context) { httperr.Abort(c, errors.New("pq: connection refused")) },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"message":"Internal server error"}}`,
		},
		{
			name:     "panicはリカバリーで500に変換される",
			handler:  func(_ *gin.Context) { panic("boom") },
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":{"message":"Internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newEngine(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))
	engine.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	t.Run("echoes the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-123", rec.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})
}
