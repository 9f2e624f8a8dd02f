package service

import (
	"context"
	"strings"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/utils"
	"github.com/google/uuid"
)

const maxPriceDecimal = 999999.99

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name              string
	Description       *string
	SKU               string
	Price             float64
	Cost              float64
	StockQuantity     int
	LowStockThreshold int
	Category          *string
	IsActive          *bool
}

// validateProductFields applies the catalog validation rules shared by
// create and update
func validateProductFields(input *CreateProductInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	} else if len(name) > 255 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name must not exceed 255 characters"})
	}

	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sku", Message: "SKU is required"})
	} else if len(sku) > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sku", Message: "SKU must not exceed 100 characters"})
	}

	if input.Description != nil && len(*input.Description) > 1000 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "Description must not exceed 1000 characters"})
	}

	if input.Price < 0 || input.Price > maxPriceDecimal {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be between 0 and 999999.99"})
	}

	if input.Cost < 0 || input.Cost > maxPriceDecimal {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cost", Message: "Cost must be between 0 and 999999.99"})
	}

	if input.StockQuantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "stock_quantity", Message: "Stock quantity must not be negative"})
	}

	if input.LowStockThreshold < 0 || input.LowStockThreshold > 1000 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "low_stock_threshold", Message: "Low stock threshold must be between 0 and 1000"})
	}

	if input.Category != nil && len(*input.Category) > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Category must not exceed 100 characters"})
	}

	return fieldErrors
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if fieldErrors := validateProductFields(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	sku := strings.TrimSpace(input.SKU)
	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &entity.Product{
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		SKU:               sku,
		Price:             utils.DecimalToCents(input.Price),
		Cost:              utils.DecimalToCents(input.Cost),
		StockQuantity:     input.StockQuantity,
		LowStockThreshold: input.LowStockThreshold,
		Category:          input.Category,
		IsActive:          isActive,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// POSCatalog holds the active, in-stock products shown on the sales screen
type POSCatalog struct {
	Products   []entity.Product `json:"products"`
	Categories []string         `json:"categories"`
}

// GetPOSCatalog returns active products with stock, optionally filtered by
// search term and category, plus the distinct category list
func (s *ProductService) GetPOSCatalog(ctx context.Context, search, category string) (*POSCatalog, error) {
	params := &repository.ProductFilterParams{
		Pagination:  &pagination.PaginationParams{Page: 1, PerPage: 100},
		Search:      search,
		Category:    category,
		ActiveOnly:  true,
		InStockOnly: true,
		SortBy:      "name",
		SortOrder:   "ASC",
	}

	products, _, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &POSCatalog{Products: products, Categories: categories}, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ProductID         uuid.UUID
	Name              *string
	Description       *string
	SKU               *string
	Price             *float64
	Cost              *float64
	StockQuantity     *int
	LowStockThreshold *int
	Category          *string
	IsActive          *bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	// Validate against the merged state so partial updates obey the same
	// rules as creation
	merged := &CreateProductInput{
		Name:              product.Name,
		Description:       product.Description,
		SKU:               product.SKU,
		Price:             product.GetPriceDecimal(),
		Cost:              product.GetCostDecimal(),
		StockQuantity:     product.StockQuantity,
		LowStockThreshold: product.LowStockThreshold,
		Category:          product.Category,
	}
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Description != nil {
		merged.Description = input.Description
	}
	if input.SKU != nil {
		merged.SKU = *input.SKU
	}
	if input.Price != nil {
		merged.Price = *input.Price
	}
	if input.Cost != nil {
		merged.Cost = *input.Cost
	}
	if input.StockQuantity != nil {
		merged.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		merged.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Category != nil {
		merged.Category = input.Category
	}
	if fieldErrors := validateProductFields(merged); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	// SKU uniqueness excludes the product itself
	if input.SKU != nil && strings.TrimSpace(*input.SKU) != product.SKU {
		sku := strings.TrimSpace(*input.SKU)
		existing, err := s.productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Product SKU already exists")
		}
		product.SKU = sku
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = utils.DecimalToCents(*input.Price)
	}
	if input.Cost != nil {
		product.Cost = utils.DecimalToCents(*input.Cost)
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Category != nil {
		product.Category = input.Category
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct soft-deletes a product. Past sales keep their line items.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns active products at or below their alert
// threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, limit)
}

// ReduceStock decrements a product's stock, failing when fewer units are
// available than requested
func (s *ProductService) ReduceStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	ok, err := s.productRepo.AtomicDecrementStock(ctx, id, quantity)
	if err != nil {
		return err
	}
	if !ok {
		// Re-read for the current count; another request may have taken
		// stock since the first read
		current, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		available := 0
		if current != nil {
			available = current.StockQuantity
		}
		return apperror.NewInsufficientStockError(product.Name, available)
	}

	return nil
}
