package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantKept bool
	}{
		{name: "no header generates an id"},
		{name: "client id is kept", inbound: "checkout-7f3a", wantKept: true},
		{name: "id with spaces is replaced", inbound: "two words"},
		{name: "id with control characters is replaced", inbound: "abc\x01def"},
		{name: "oversized id is replaced", inbound: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id at the length limit is kept", inbound: strings.Repeat("b", maxRequestIDLength), wantKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/api/cart", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			if tt.inbound != "" {
				req.Header.Set(RequestIDHeader, tt.inbound)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			if tt.wantKept {
				assert.Equal(t, tt.inbound, id)
				return
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.Set(string(RequestIDKey), 42)
	assert.Empty(t, GetRequestID(c), "non-string values are ignored")

	c.Set(string(RequestIDKey), "cart-req-1")
	assert.Equal(t, "cart-req-1", GetRequestID(c))
}
