package repository

import (
	"context"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/google/uuid"
)

// SaleFilterParams holds filtering options for listing sales
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	Status        *enum.SaleStatus
	PaymentMethod *enum.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
}

// SaleRepository defines sale data access operations
type SaleRepository interface {
	// CreateWithItems persists the sale, its items and the matching stock
	// decrements in a single transaction. Returns *StockConflictError when
	// any product lacks stock, and ErrDuplicateSaleNumber on a sale number
	// collision. Either way nothing is written.
	CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetBySaleNumber(ctx context.Context, saleNumber string) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	Recent(ctx context.Context, limit int) ([]entity.Sale, error)

	// CancelWithRestock flips a completed sale to cancelled and restores the
	// sold quantities, all in one transaction. Returns false when the sale
	// was not in completed status.
	CancelWithRestock(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkRefunded flips a completed sale to refunded without touching
	// stock. Returns false when the sale was not in completed status.
	MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error)
}
