package repository

import (
	"context"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilterParams holds filtering options for listing products
type ProductFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string // Matches name or SKU
	Category    string
	ActiveOnly  bool
	InStockOnly bool
	LowStock    bool
	SortBy      string
	SortOrder   string
}

// ProductRepository defines product data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, limit int) ([]entity.Product, error)
	Categories(ctx context.Context) ([]string, error)

	// AtomicDecrementStock decrements stock only if sufficient quantity
	// exists. Returns false when the conditional update affects zero rows.
	AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error)
}
