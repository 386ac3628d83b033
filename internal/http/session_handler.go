package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/service"
)

// SessionHandler exposes the shopper session and the logout lifecycle rule.
type SessionHandler struct {
	sessions service.SessionServiceInterface
	cart     service.CartServiceInterface
}

// NewSessionHandler creates a SessionHandler. A nil sessions service turns
// GET /session into 404; logout still empties the cart.
func NewSessionHandler(sessions service.SessionServiceInterface, cart service.CartServiceInterface) *SessionHandler {
	return &SessionHandler{sessions: sessions, cart: cart}
}

// GetSession handles GET /api/session requests.
//
// @Summary      Get the shopper session
// @Description  Reports whether the request carries a valid session token. Requests without a token are anonymous.
// @Tags         Session
// @Produce      json
// @Param        Authorization header string false "Bearer session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session status"
// @Failure      401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure      404 {object} dto.ErrorResponse "Sessions are not configured"
// @Security     BearerAuth
// @Router       /api/session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.sessions == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeySessionDisabled, nil)
		return
	}

	session, ok := middleware.GetSession(c)
	if !ok {
		builder.SuccessOK(dto.SessionView{Authenticated: false})
		return
	}

	expiresAt := session.ExpiresAt
	builder.SuccessOK(dto.SessionView{
		Authenticated: true,
		Subject:       session.Subject,
		ExpiresAt:     &expiresAt,
	})
}

// Logout handles POST /api/session/logout requests.
//
// @Summary      Log out
// @Description  Ends the shopper session on the client and empties the cart.
// @Tags         Session
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartActionView} "Empty cart"
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	state := h.cart.Logout()
	NewResponseBuilder(c).SuccessOK(dto.CartActionView{
		Message: translate(c, i18n.SuccessKeyLoggedOut),
		Cart:    newCartView(h.cart.Calculator(), state),
	})
}
