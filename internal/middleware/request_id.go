// Package middleware provides the Gin middleware stack of the storefront cart API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds inbound ids so they stay safe to log and echo.
const maxRequestIDLength = 128

// ContextKey is the type of keys the middleware stores on the gin context.
type ContextKey string

// RequestIDKey is the context key of the request id.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an id. A well-formed inbound
// X-Request-ID is kept; anything else is replaced by a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// validRequestID accepts non-empty printable ASCII without spaces.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetRequestID returns the request id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(string(RequestIDKey))
	requestID, _ := id.(string)
	return requestID
}
