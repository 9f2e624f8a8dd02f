package handler

import (
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/application/service"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/repository"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/request"
	"github.com/appdotbuilder/pos-system-9aa7/internal/presentation/http/dto/response"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/apperror"
	"github.com/appdotbuilder/pos-system-9aa7/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale processing endpoints
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid product ID in items"))
			return
		}
		items = append(items, service.SaleItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	sale, err := h.saleService.CompleteSale(c.Request.Context(), &service.CompleteSaleInput{
		UserID:        userID,
		Items:         items,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		AmountPaid:    req.AmountPaid,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed", sale)
}

// List handles GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	var query request.SaleListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid query parameters"))
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: query.Page, PerPage: query.PerPage},
	}
	params.Pagination.Validate()

	if query.Status != "" {
		status := enum.SaleStatus(query.Status)
		if !status.Valid() {
			response.Error(c, apperror.NewBadRequestError("Invalid sale status"))
			return
		}
		params.Status = &status
	}

	if query.PaymentMethod != "" {
		method := enum.PaymentMethod(query.PaymentMethod)
		if !method.Valid() {
			response.Error(c, apperror.NewBadRequestError("Invalid payment method"))
			return
		}
		params.PaymentMethod = &method
	}

	if query.StartDate != "" {
		start, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid start date, expected YYYY-MM-DD"))
			return
		}
		params.StartDate = &start
	}

	if query.EndDate != "" {
		end, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid end date, expected YYYY-MM-DD"))
			return
		}
		// Inclusive end date: filter uses created_at < end of that day
		endOfDay := end.Add(24 * time.Hour)
		params.EndDate = &endOfDay
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Sales retrieved", result.Items, result.Pagination)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid sale ID"))
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// Cancel handles POST /sales/:id/cancel
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid sale ID"))
		return
	}

	sale, err := h.saleService.CancelSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale cancelled", sale)
}

// Refund handles POST /sales/:id/refund
func (h *SaleHandler) Refund(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.Error(c, apperror.NewBadRequestError("Invalid sale ID"))
		return
	}

	sale, err := h.saleService.RefundSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale refunded", sale)
}
