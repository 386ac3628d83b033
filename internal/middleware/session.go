package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/service"
)

const (
	// SessionKey is the context key holding the verified *service.Session.
	SessionKey = "session"
	// SessionSubjectKey is the context key holding the session subject.
	SessionSubjectKey = "session_subject"
)

// OptionalSession verifies a Bearer token when one is sent and stores the
// session in the context. Requests without an Authorization header pass
// through anonymously; a header that fails verification is rejected with 401.
func OptionalSession(sessions service.SessionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || sessions == nil {
			c.Next()
			return
		}

		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID))
			return
		}

		session, err := sessions.Validate(tokenString)
		if err != nil {
			key := i18n.ErrKeyInvalidToken
			if errors.Is(err, service.ErrSessionExpired) {
				key = i18n.ErrKeySessionExpired
			}
			message := i18n.GetTranslator().Translate(key, locale)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID))
			return
		}

		c.Set(SessionKey, session)
		c.Set(SessionSubjectKey, session.Subject)
		c.Next()
	}
}

// GetSession returns the session stored by OptionalSession, if any.
func GetSession(c *gin.Context) (*service.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*service.Session)
	return session, ok && session != nil
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}
