package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		handler      gin.HandlerFunc
		wantStatus   int
		wantCode     string
		wantLevel    string
		wantBodyText string
	}{
		{
			name: "unwritten error becomes internal error",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("slot store exploded"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
			wantLevel:  "error",
		},
		{
			name: "expired deadline becomes timeout",
			handler: func(c *gin.Context) {
				_ = c.Error(fmt.Errorf("catalog lookup: %w", context.DeadlineExceeded))
			},
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   dto.ErrCodeTimeout,
			wantLevel:  "error",
		},
		{
			name: "written client error is only logged",
			handler: func(c *gin.Context) {
				_ = c.Error(dto.ErrInvalidSize)
				c.String(http.StatusBadRequest, "bad size")
			},
			wantStatus:   http.StatusBadRequest,
			wantLevel:    "warn",
			wantBodyText: "bad size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter("debug", false, &buf)
			t.Cleanup(func() { logger.Init("info", false) })

			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.POST("/api/cart/items", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cart/items", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Error)
				assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
			}
			if tt.wantBodyText != "" {
				assert.Equal(t, tt.wantBodyText, w.Body.String())
			}

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "http", entry["component"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.Equal(t, "/api/cart/items", entry["path"])
		})
	}
}

func TestErrorHandler_NoErrors(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("debug", false, &buf)
	t.Cleanup(func() { logger.Init("info", false) })

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/api/cart", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Zero(t, buf.Len())
}
