package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/middleware"
)

// Validator is implemented by request bodies that check themselves after
// binding.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body into a new T and runs its
// Validate method when it has one.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the response envelopes of the cart API.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.NewSuccess(data, middleware.GetRequestID(b.c)))
}

// SuccessOK writes data with 200 OK.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts the request with a translated ErrorResponse. err, when set, is
// attached to the context for the error handler to log; a validation error
// also fills Details with the offending field.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	resp := dto.NewError(
		dto.ErrCodeFromStatus(statusCode),
		i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c)),
	).WithRequestID(middleware.GetRequestID(b.c))

	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			resp = resp.WithDetail(validationErr.Field, validationErr.Message)
		}
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
}

// BadRequest reports a malformed or invalid request body. Validation errors
// pick their own message key.
func (b *ResponseBuilder) BadRequest(err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		b.Error(http.StatusBadRequest, validationErrorKey(validationErr), err)
		return
	}
	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
