package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	domainRepo "github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// isUniqueViolation detects a unique constraint failure (Postgres 23505)
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}

// CreateWithItems runs the conditional stock decrements, the sale insert
// and the item inserts in one transaction. Any failure rolls everything
// back, so stock is never reduced for a sale that was not recorded.
func (r *saleRepository) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Aggregate quantities per product, preserving first-seen order so
		// conflicts are reported against the earliest offending line
		decrements := make(map[uuid.UUID]int, len(items))
		order := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			if _, seen := decrements[item.ProductID]; !seen {
				order = append(order, item.ProductID)
			}
			decrements[item.ProductID] += item.Quantity
		}

		for _, productID := range order {
			amount := decrements[productID]
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock_quantity >= ?", productID, amount).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", amount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Re-read inside the transaction for the current count
				var product entity.Product
				err := tx.Select("name", "stock_quantity").First(&product, "id = ?", productID).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &domainRepo.StockConflictError{ProductID: productID}
				}
				if err != nil {
					return err
				}
				return &domainRepo.StockConflictError{
					ProductID:   productID,
					ProductName: product.Name,
					Available:   product.StockQuantity,
				}
			}
		}

		if err := tx.Create(sale).Error; err != nil {
			if isUniqueViolation(err) {
				return domainRepo.ErrDuplicateSaleNumber
			}
			return err
		}

		for i := range items {
			items[i].SaleID = sale.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetBySaleNumber(ctx context.Context, saleNumber string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "sale_number = ?", saleNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) Recent(ctx context.Context, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

// CancelWithRestock flips status to cancelled and restores sold
// quantities in one transaction. The conditional status update makes
// concurrent cancels race-safe: only one request restocks.
func (r *saleRepository) CancelWithRestock(ctx context.Context, id uuid.UUID) (bool, error) {
	cancelled := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Sale{}).
			Where("id = ? AND status = ?", id, enum.SaleStatusCompleted).
			Update("status", enum.SaleStatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		cancelled = true

		var items []entity.SaleItem
		if err := tx.Where("sale_id = ?", id).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return cancelled, err
}

func (r *saleRepository) MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("id = ? AND status = ?", id, enum.SaleStatusCompleted).
		Update("status", enum.SaleStatusRefunded)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
