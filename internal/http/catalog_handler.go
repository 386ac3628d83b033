package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/service"
)

// CatalogHandler serves product lookups through the catalog cache.
type CatalogHandler struct {
	catalog service.CatalogServiceInterface
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetProduct handles GET /api/catalog/products/:id requests.
//
// @Summary      Get a product
// @Tags         Catalog
// @Produce      json
// @Param        id path int true "Product id"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid product id"
// @Failure      404 {object} dto.ErrorResponse "Product not in the catalog"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := productIDParam(c, "id")
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidProductID, nil)
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		status, key := catalogErrorStatus(err)
		builder.Error(status, key, err)
		return
	}
	builder.SuccessOK(product)
}
