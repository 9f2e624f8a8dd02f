package service

import (
	"context"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/utils"
	"github.com/google/uuid"
)

const (
	topProductsLimit  = 5
	topProductsWindow = 30 // days
	lowStockLimit     = 5
	recentSalesLimit  = 5
	salesChartDays    = 7
)

// ReportService aggregates sales and inventory statistics. Every method
// takes the reference time explicitly so results are deterministic and
// repeatable for a given dataset.
type ReportService struct {
	reportRepo  repository.ReportRepository
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// DailyStats aggregates completed sales for a single day
type DailyStats struct {
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
	ItemsSold  int64   `json:"items_sold"`
}

// MonthlyStats aggregates completed sales for the month to date
type MonthlyStats struct {
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}

// TopProductPoint represents a product ranked by units sold
type TopProductPoint struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSKU   string    `json:"product_sku"`
	QuantitySold int64     `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
}

// SalesChartPoint represents one day in the revenue series
type SalesChartPoint struct {
	Date       string  `json:"date"`
	Label      string  `json:"label"`
	Revenue    float64 `json:"revenue"`
	SalesCount int64   `json:"sales_count"`
}

// InventoryStats aggregates the active product catalog
type InventoryStats struct {
	TotalProducts   int64   `json:"total_products"`
	LowStockCount   int64   `json:"low_stock_count"`
	OutOfStockCount int64   `json:"out_of_stock_count"`
	TotalValue      float64 `json:"total_value"` // Sum of stock * cost
}

// DashboardStats represents the full dashboard payload
type DashboardStats struct {
	Daily            DailyStats        `json:"daily"`
	Monthly          MonthlyStats      `json:"monthly"`
	TopProducts      []TopProductPoint `json:"top_products"`
	SalesChart       []SalesChartPoint `json:"sales_chart"`
	LowStockProducts []entity.Product  `json:"low_stock_products"`
	RecentSales      []entity.Sale     `json:"recent_sales"`
	Inventory        InventoryStats    `json:"inventory"`
}

// GetDashboardStats builds the dashboard for the day containing now.
// Empty data yields zero values, never an error.
func (s *ReportService) GetDashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	daily, err := s.reportRepo.SalesTotals(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}
	itemsSold, err := s.reportRepo.ItemsSold(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}
	stats.Daily = DailyStats{
		SalesCount: daily.SalesCount,
		Revenue:    utils.CentsToDecimal(daily.RevenueCents),
		ItemsSold:  itemsSold,
	}

	monthly, err := s.reportRepo.SalesTotals(ctx, startOfMonth, endOfDay)
	if err != nil {
		return nil, err
	}
	stats.Monthly = MonthlyStats{
		SalesCount: monthly.SalesCount,
		Revenue:    utils.CentsToDecimal(monthly.RevenueCents),
	}

	since := now.AddDate(0, 0, -topProductsWindow)
	topProducts, err := s.reportRepo.TopProducts(ctx, since, topProductsLimit)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = make([]TopProductPoint, 0, len(topProducts))
	for _, tp := range topProducts {
		stats.TopProducts = append(stats.TopProducts, TopProductPoint{
			ProductID:    tp.ProductID,
			ProductName:  tp.ProductName,
			ProductSKU:   tp.ProductSKU,
			QuantitySold: tp.QuantitySold,
			Revenue:      utils.CentsToDecimal(tp.RevenueCents),
		})
	}

	chart, err := s.getSalesChart(ctx, now)
	if err != nil {
		return nil, err
	}
	stats.SalesChart = chart

	lowStock, err := s.productRepo.GetLowStock(ctx, lowStockLimit)
	if err != nil {
		return nil, err
	}
	stats.LowStockProducts = lowStock

	recent, err := s.saleRepo.Recent(ctx, recentSalesLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentSales = recent

	inventory, err := s.reportRepo.InventoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	stats.Inventory = InventoryStats{
		TotalProducts:   inventory.TotalProducts,
		LowStockCount:   inventory.LowStockCount,
		OutOfStockCount: inventory.OutOfStockCount,
		TotalValue:      utils.CentsToDecimal(inventory.TotalValueCents),
	}

	return stats, nil
}

// getSalesChart builds the trailing revenue series, one point per calendar
// day ending at now's day. Days without sales appear with zero values.
func (s *ReportService) getSalesChart(ctx context.Context, now time.Time) ([]SalesChartPoint, error) {
	points := make([]SalesChartPoint, 0, salesChartDays)

	for i := salesChartDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		totals, err := s.reportRepo.SalesTotals(ctx, startOfDay, endOfDay)
		if err != nil {
			return nil, err
		}

		points = append(points, SalesChartPoint{
			Date:       startOfDay.Format("2006-01-02"),
			Label:      startOfDay.Format("Jan 2"),
			Revenue:    utils.CentsToDecimal(totals.RevenueCents),
			SalesCount: totals.SalesCount,
		})
	}

	return points, nil
}
