package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/service"
)

// CartHandler provides HTTP handlers for the cart and checkout routes.
type CartHandler struct {
	cart    service.CartServiceInterface
	catalog service.CatalogServiceInterface
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(cart service.CartServiceInterface, catalog service.CatalogServiceInterface) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

func (h *CartHandler) render(state model.CartState) dto.CartView {
	return newCartView(h.cart.Calculator(), state)
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the cart
// @Description  Returns the cart lines in insertion order, each priced with its unit price and line total, plus the item count and the cart total.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Current cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.render(h.cart.Snapshot()))
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add a product to the cart
// @Description  Resolves the product and its customization from the catalog and merges it into the line holding the same selection, or appends a new line. Quantity 0 or omitted adds one unit; a negative quantity takes units away and removes the line at zero. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Product selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product, flavor, crust or extra not in the catalog"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Failure      504 {object} dto.ErrorResponse "Catalog lookup timed out"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	product, composition, err := h.catalog.Resolve(c.Request.Context(), toSelection(req))
	if err != nil {
		status, key := catalogErrorStatus(err)
		builder.Error(status, key, err)
		return
	}

	builder.SuccessOK(h.render(h.cart.Add(product, req.Quantity, composition)))
}

// SetQuantity handles PUT /api/cart/items/:productId requests.
//
// @Summary      Set a line quantity
// @Description  Sets the quantity of the first cart line for the product, whatever its customization. Zero or less removes that line. Unknown products leave the cart unchanged.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        productId path int true "Product id"
// @Param        request body dto.SetQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	productID, ok := productIDParam(c, "productId")
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidProductID, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.SetQuantityRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	builder.SuccessOK(h.render(h.cart.SetQuantity(productID, *req.Quantity)))
}

// RemoveItem handles DELETE /api/cart/items/:productId requests.
//
// @Summary      Remove a product
// @Description  Removes every cart line for the product. Unknown products leave the cart unchanged.
// @Tags         Cart
// @Produce      json
// @Param        productId path int true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid product id"
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	productID, ok := productIDParam(c, "productId")
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidProductID, nil)
		return
	}

	builder.SuccessOK(h.render(h.cart.Remove(productID)))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartActionView} "Empty cart"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.respondAction(c, i18n.SuccessKeyCartCleared, h.cart.Clear())
}

// OpenCart handles POST /api/cart/open requests.
//
// @Summary      Show the cart
// @Description  Marks the cart as displayed. The flag is not persisted.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Router       /api/cart/open [post]
func (h *CartHandler) OpenCart(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.render(h.cart.Open()))
}

// CloseCart handles POST /api/cart/close requests.
//
// @Summary      Hide the cart
// @Description  Marks the cart as hidden. The flag is not persisted.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView} "Cart"
// @Router       /api/cart/close [post]
func (h *CartHandler) CloseCart(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.render(h.cart.Close()))
}

// CompleteCheckout handles POST /api/checkout/complete requests.
//
// @Summary      Complete checkout
// @Description  Called once the order has been placed. Empties the cart.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartActionView} "Empty cart"
// @Router       /api/checkout/complete [post]
func (h *CartHandler) CompleteCheckout(c *gin.Context) {
	h.respondAction(c, i18n.SuccessKeyCheckoutCompleted, h.cart.CompleteCheckout())
}

func (h *CartHandler) respondAction(c *gin.Context, messageKey string, state model.CartState) {
	NewResponseBuilder(c).SuccessOK(dto.CartActionView{
		Message: translate(c, messageKey),
		Cart:    h.render(state),
	})
}
