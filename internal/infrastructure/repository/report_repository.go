package repository

import (
	"context"
	"time"

	domainRepo "github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// SalesTotals counts completed sales and sums their revenue in [from, to)
func (r *reportRepository) SalesTotals(ctx context.Context, from, to time.Time) (*domainRepo.SalesTotals, error) {
	var totals domainRepo.SalesTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(total_amount), 0) as revenue_cents
		FROM sales
		WHERE status = 'completed'
			AND created_at >= ? AND created_at < ?
	`, from, to).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// ItemsSold sums the quantities on completed sales in [from, to)
func (r *reportRepository) ItemsSold(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(si.quantity), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 'completed'
			AND s.created_at >= ? AND s.created_at < ?
	`, from, to).Scan(&count).Error
	return count, err
}

// TopProducts ranks products by units sold on completed sales since the
// given time. Ties break on product id for stable ordering.
func (r *reportRepository) TopProducts(ctx context.Context, since time.Time, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.sku as product_sku,
			SUM(si.quantity) as quantity_sold,
			SUM(si.total_price) as revenue_cents
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.status = 'completed' AND s.created_at >= ?
		GROUP BY p.id, p.name, p.sku
		ORDER BY quantity_sold DESC, p.id ASC
		LIMIT ?
	`, since, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// InventoryTotals aggregates the active, non-deleted catalog. Value is
// stock on hand at cost, not at selling price.
func (r *reportRepository) InventoryTotals(ctx context.Context) (*domainRepo.InventoryTotals, error) {
	var totals domainRepo.InventoryTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as total_products,
			COUNT(*) FILTER (WHERE stock_quantity <= low_stock_threshold) as low_stock_count,
			COUNT(*) FILTER (WHERE stock_quantity = 0) as out_of_stock_count,
			COALESCE(SUM(stock_quantity::bigint * cost), 0) as total_value_cents
		FROM products
		WHERE is_active = true AND deleted_at IS NULL
	`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
