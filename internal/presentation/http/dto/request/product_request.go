package request

// CreateProductRequest represents the product creation request body.
// Prices are decimals on the wire and stored in cents internally.
type CreateProductRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       *string `json:"description"`
	SKU               string  `json:"sku" binding:"required"`
	Price             float64 `json:"price" binding:"min=0"`
	Cost              float64 `json:"cost" binding:"min=0"`
	StockQuantity     int     `json:"stock_quantity" binding:"min=0"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
	Category          *string `json:"category"`
	ImagePath         *string `json:"image_path"`
	IsActive          *bool   `json:"is_active"`
}

// UpdateProductRequest represents the product update request body.
// All fields are optional; absent fields keep their current value.
type UpdateProductRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	SKU               *string  `json:"sku"`
	Price             *float64 `json:"price"`
	Cost              *float64 `json:"cost"`
	StockQuantity     *int     `json:"stock_quantity"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
	Category          *string  `json:"category"`
	ImagePath         *string  `json:"image_path"`
	IsActive          *bool    `json:"is_active"`
}

// ReduceStockRequest represents a manual stock reduction request body
type ReduceStockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ProductListQuery represents product list query parameters
type ProductListQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	Active    *bool  `form:"active"`
	InStock   bool   `form:"in_stock"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
