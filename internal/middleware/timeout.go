package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
)

// DefaultRequestTimeout bounds API requests when no timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// Timeout returns a middleware that puts a deadline on the request context.
// Handlers run on the calling goroutine and observe the deadline through
// the context (catalog lookups do). If the deadline passed and the handler
// wrote nothing, a 504 is sent.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, dto.NewError(dto.ErrCodeTimeout, message).
				WithRequestID(GetRequestID(c)))
		}
	}
}
