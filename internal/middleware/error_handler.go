package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/rs/zerolog"
)

// ErrorHandler logs the errors handlers attach to the context. Client errors
// are logged at warn level and server errors at error level. When the handler
// wrote nothing, a 500 (or 504 for an expired deadline) is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last().Err
		requestID := GetRequestID(c)

		if !c.Writer.Written() {
			status, key := fallbackStatus(last)
			message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
			c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
		}
		status := c.Writer.Status()

		log := logger.Component("http")
		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		logRequestError(event, c, requestID, status)
	}
}

func fallbackStatus(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

func logRequestError(event *zerolog.Event, c *gin.Context, requestID string, status int) {
	errs := make([]string, 0, len(c.Errors))
	for _, e := range c.Errors {
		errs = append(errs, e.Error())
	}
	event.
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Strs("errors", errs).
		Msg("Request error")
}
