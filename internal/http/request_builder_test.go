package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedID  int
		expectError bool
	}{
		{name: "valid request", body: `{"product_id": 7, "quantity": 2}`, expectedID: 7},
		{name: "invalid JSON", body: `{"product_id": }`, expectError: true},
		{name: "missing required product", body: `{"quantity": 2}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			req, err := BuildRequest[dto.AddItemRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, req.ProductID)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
		expectError bool
	}{
		{name: "valid request", body: `{"quantity": 3}`},
		{name: "zero quantity is valid", body: `{"quantity": 0}`},
		{name: "missing quantity", body: `{}`, expectError: true},
		{name: "invalid JSON", body: `nope`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPut, tt.body)

			result, err := BuildRequestAndValidate[dto.SetQuantityRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			require.NotNil(t, result.Quantity)
		})
	}
}

func TestBuildRequestAndValidate_RunsValidate(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, `{"product_id": 1, "composition": {"size": "XL"}}`)

	_, err := BuildRequestAndValidate[dto.AddItemRequest](c)

	assert.Equal(t, dto.ErrInvalidSize, err)
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")

	NewResponseBuilder(c).SuccessOK(dto.SessionView{Authenticated: false})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)
	assert.Equal(t, map[string]interface{}{"authenticated": false}, resp.Data)
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name         string
		statusCode   int
		key          string
		err          error
		expectedCode string
	}{
		{
			name:         "bad request",
			statusCode:   http.StatusBadRequest,
			key:          i18n.ErrKeyInvalidSize,
			expectedCode: dto.ErrCodeInvalidRequest,
		},
		{
			name:         "not found records the error",
			statusCode:   http.StatusNotFound,
			key:          i18n.ErrKeyProductNotFound,
			err:          errors.New("product 9 missing"),
			expectedCode: dto.ErrCodeNotFound,
		},
		{
			name:         "catalog down",
			statusCode:   http.StatusServiceUnavailable,
			key:          i18n.ErrKeyCatalogUnavailable,
			expectedCode: dto.ErrCodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "")

			NewResponseBuilder(c).Error(tt.statusCode, tt.key, tt.err)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.True(t, c.IsAborted())
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, i18n.GetTranslator().Translate(tt.key, i18n.DefaultLocale), resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			assert.Equal(t, tt.err != nil, len(c.Errors) > 0)
			assert.Empty(t, resp.Details)
		})
	}
}

func TestResponseBuilder_BadRequest(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKey     string
		wantDetails map[string]string
	}{
		{
			name:        "validation error names the field",
			err:         dto.ErrInvalidSize,
			wantKey:     i18n.ErrKeyInvalidSize,
			wantDetails: map[string]string{"composition.size": "must be one of P, M or G"},
		},
		{
			name:        "wrapped validation error",
			err:         fmt.Errorf("bind: %w", dto.ErrInvalidProductID),
			wantKey:     i18n.ErrKeyInvalidProductID,
			wantDetails: map[string]string{"product_id": "must be a positive integer"},
		},
		{
			name:    "malformed body",
			err:     errors.New("unexpected EOF"),
			wantKey: i18n.ErrKeyInvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "")

			NewResponseBuilder(c).BadRequest(tt.err)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.Equal(t, i18n.GetTranslator().Translate(tt.wantKey, i18n.DefaultLocale), resp.Message)
			assert.Equal(t, tt.wantDetails, resp.Details)
		})
	}
}
