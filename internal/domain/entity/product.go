package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the catalog
type Product struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Description       *string        `gorm:"type:text" json:"description,omitempty"`
	SKU               string         `gorm:"size:100;unique;not null" json:"sku"`
	Price             int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	Cost              int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	StockQuantity     int            `gorm:"not null;default:0" json:"stock_quantity"`
	LowStockThreshold int            `gorm:"not null;default:10" json:"low_stock_threshold"`
	Category          *string        `gorm:"size:100" json:"category,omitempty"`
	ImagePath         *string        `gorm:"size:255" json:"image_path,omitempty"`
	IsActive          bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	SaleItems []SaleItem `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its alert threshold
func (p *Product) IsLowStock() bool {
	return p.IsActive && p.StockQuantity <= p.LowStockThreshold
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// GetCostDecimal returns the cost as a decimal (for display)
func (p *Product) GetCostDecimal() float64 {
	return float64(p.Cost) / 100
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price      float64 `json:"price"`
		Cost       float64 `json:"cost"`
		IsLowStock bool    `json:"is_low_stock"`
	}{
		Alias:      Alias(p),
		Price:      p.GetPriceDecimal(),
		Cost:       p.GetCostDecimal(),
		IsLowStock: p.IsLowStock(),
	})
}
