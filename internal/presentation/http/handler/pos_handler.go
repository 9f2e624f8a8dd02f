package handler

import (
	"github.com/appdotbuilder/pos-system-9aa7/internal/application/service"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// POSHandler serves the point-of-sale screen data
type POSHandler struct {
	productService *service.ProductService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(productService *service.ProductService) *POSHandler {
	return &POSHandler{productService: productService}
}

// GetCatalog handles GET /pos. Returns the active in-stock products and
// the category list for the sales screen.
func (h *POSHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.productService.GetPOSCatalog(
		c.Request.Context(),
		c.Query("search"),
		c.Query("category"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "POS catalog retrieved", catalog)
}
