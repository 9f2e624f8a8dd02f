package handler

import (
	"github.com/appdotbuilder/pos-system-9aa7/internal/application/service"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/request"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/response"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var query request.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid query parameters"))
		return
	}

	params := &repository.ProductFilterParams{
		Pagination:  &pagination.PaginationParams{Page: query.Page, PerPage: query.PerPage},
		Search:      query.Search,
		Category:    query.Category,
		ActiveOnly:  query.Active != nil && *query.Active,
		InStockOnly: query.InStock,
		LowStock:    query.LowStock,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
	}
	params.Pagination.Validate()

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Products retrieved", result.Items, result.Pagination)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	threshold := 10
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:              req.Name,
		Description:       req.Description,
		SKU:               req.SKU,
		Price:             req.Price,
		Cost:              req.Cost,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: threshold,
		Category:          req.Category,
		IsActive:          req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ProductID:         id,
		Name:              req.Name,
		Description:       req.Description,
		SKU:               req.SKU,
		Price:             req.Price,
		Cost:              req.Cost,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		Category:          req.Category,
		IsActive:          req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetLowStock handles GET /products/low-stock
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved", products)
}

// ReduceStock handles POST /products/:id/reduce-stock
func (h *ProductHandler) ReduceStock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid product ID"))
		return
	}

	var req request.ReduceStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	if err := h.productService.ReduceStock(c.Request.Context(), id, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock reduced", product)
}
