package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SalesTotals aggregates completed sales over a period
type SalesTotals struct {
	SalesCount   int64
	RevenueCents int64
}

// TopProductResult represents a product ranked by units sold
type TopProductResult struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSKU   string    `json:"product_sku"`
	QuantitySold int64     `json:"quantity_sold"`
	RevenueCents int64     `json:"-"`
}

// InventoryTotals aggregates the active product catalog
type InventoryTotals struct {
	TotalProducts   int64
	LowStockCount   int64
	OutOfStockCount int64
	TotalValueCents int64 // Sum of stock_quantity * cost
}

// ReportRepository defines read-only aggregation queries over completed
// sales and the product catalog
type ReportRepository interface {
	SalesTotals(ctx context.Context, from, to time.Time) (*SalesTotals, error)
	ItemsSold(ctx context.Context, from, to time.Time) (int64, error)
	TopProducts(ctx context.Context, since time.Time, limit int) ([]TopProductResult, error)
	InventoryTotals(ctx context.Context) (*InventoryTotals, error)
}
