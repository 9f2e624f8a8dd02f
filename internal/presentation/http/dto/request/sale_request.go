package request

// SaleItemRequest represents one cart line in a sale request
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest represents the sale creation request body
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	AmountPaid    float64           `json:"amount_paid" binding:"required,min=0"`
	Notes         *string           `json:"notes"`
}

// SaleListQuery represents sale list query parameters
type SaleListQuery struct {
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	Status        string `form:"status"`
	PaymentMethod string `form:"payment_method"`
	StartDate     string `form:"start_date"` // YYYY-MM-DD
	EndDate       string `form:"end_date"`   // YYYY-MM-DD
}
