package service

import (
	"context"
	"errors"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/entity"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/utils"
	"github.com/google/uuid"
)

// saleNumberAttempts bounds the retry loop on sale number collisions
const saleNumberAttempts = 5

// SaleService handles sale transaction processing
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// SaleItemInput represents a cart line in a sale
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CompleteSaleInput represents the complete sale input
type CompleteSaleInput struct {
	UserID        uuid.UUID
	Items         []SaleItemInput
	PaymentMethod enum.PaymentMethod
	AmountPaid    float64
	Notes         *string
}

// CompleteSale validates the cart, computes totals and persists the sale
// with its stock decrements in a single transaction. Unit prices are
// snapshotted from the catalog, never taken from the client.
func (s *SaleService) CompleteSale(ctx context.Context, input *CompleteSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must contain at least one item")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	// Validate cart lines in submitted order. The quantity check is
	// cumulative so repeated lines for one product cannot oversell it.
	products := make(map[uuid.UUID]*entity.Product)
	requested := make(map[uuid.UUID]int)
	items := make([]entity.SaleItem, 0, len(input.Items))
	var subtotal int64

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}

		product, ok := products[line.ProductID]
		if !ok {
			var err error
			product, err = s.productRepo.GetByID(ctx, line.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, apperror.NewNotFoundError("Product")
			}
			products[line.ProductID] = product
		}

		requested[line.ProductID] += line.Quantity
		if requested[line.ProductID] > product.StockQuantity {
			return nil, apperror.NewInsufficientStockError(product.Name, product.StockQuantity)
		}

		lineTotal := product.Price * int64(line.Quantity)
		subtotal += lineTotal

		items = append(items, entity.SaleItem{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
		})
	}

	taxAmount := utils.TaxCents(subtotal)
	totalAmount := subtotal + taxAmount
	amountPaid := utils.DecimalToCents(input.AmountPaid)

	if amountPaid < totalAmount {
		return nil, apperror.NewInsufficientPaymentError(utils.CentsToDecimal(totalAmount))
	}

	sale := &entity.Sale{
		UserID:        input.UserID,
		Subtotal:      subtotal,
		TaxAmount:     taxAmount,
		TotalAmount:   totalAmount,
		AmountPaid:    amountPaid,
		ChangeGiven:   amountPaid - totalAmount,
		PaymentMethod: input.PaymentMethod,
		Status:        enum.SaleStatusCompleted,
		Notes:         input.Notes,
	}

	// A colliding sale number is regenerated and retried, never surfaced
	// to the caller as a validation failure
	var err error
	for attempt := 0; attempt < saleNumberAttempts; attempt++ {
		sale.SaleNumber = utils.GenerateSaleNumber(time.Now())

		err = s.saleRepo.CreateWithItems(ctx, sale, items)
		if err == nil {
			return s.saleRepo.GetWithItems(ctx, sale.ID)
		}
		if errors.Is(err, repository.ErrDuplicateSaleNumber) {
			continue
		}

		var conflict *repository.StockConflictError
		if errors.As(err, &conflict) {
			return nil, apperror.NewInsufficientStockError(conflict.ProductName, conflict.Available)
		}
		return nil, err
	}

	return nil, err
}

// GetSale retrieves a sale with its items by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering, newest first
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// CancelSale cancels a completed sale and restores the sold quantities
func (s *SaleService) CancelSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	ok, err := s.saleRepo.CancelWithRestock(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewBadRequestError("Only completed sales can be cancelled")
	}

	return s.saleRepo.GetWithItems(ctx, id)
}

// RefundSale marks a completed sale as refunded. Refunds do not restock;
// returned goods go through a separate receiving flow.
func (s *SaleService) RefundSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	ok, err := s.saleRepo.MarkRefunded(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewBadRequestError("Only completed sales can be refunded")
	}

	return s.saleRepo.GetWithItems(ctx, id)
}
