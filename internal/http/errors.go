package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/service"
)

// catalogErrorStatus maps a catalog error to a status code and message key.
func catalogErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound, i18n.ErrKeyProductNotFound
	case errors.Is(err, model.ErrInvalidSize):
		return http.StatusBadRequest, i18n.ErrKeyInvalidSize
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.Is(err, service.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// validationErrorKey picks the message key for a request validation error.
func validationErrorKey(err error) string {
	switch err {
	case dto.ErrInvalidProductID:
		return i18n.ErrKeyInvalidProductID
	case dto.ErrInvalidSize:
		return i18n.ErrKeyInvalidSize
	default:
		return i18n.ErrKeyInvalidRequestBody
	}
}

// productIDParam reads a positive product id from the named path parameter.
func productIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func translate(c *gin.Context, key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
}
