package entity

import (
	"encoding/json"
	"time"

	"github.com/appdotbuilder/pos-system-9aa7/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a completed point-of-sale transaction
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleNumber    string             `gorm:"size:100;unique;not null" json:"sale_number"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Subtotal      int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	TaxAmount     int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	TotalAmount   int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	AmountPaid    int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	ChangeGiven   int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	Status        enum.SaleStatus    `gorm:"size:50;not null;default:'completed'" json:"status"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Subtotal    float64 `json:"subtotal"`
		TaxAmount   float64 `json:"tax_amount"`
		TotalAmount float64 `json:"total_amount"`
		AmountPaid  float64 `json:"amount_paid"`
		ChangeGiven float64 `json:"change_given"`
	}{
		Alias:       Alias(s),
		Subtotal:    float64(s.Subtotal) / 100,
		TaxAmount:   float64(s.TaxAmount) / 100,
		TotalAmount: float64(s.TotalAmount) / 100,
		AmountPaid:  float64(s.AmountPaid) / 100,
		ChangeGiven: float64(s.ChangeGiven) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents a line item in a sale. The unit price is a snapshot
// of the product price at the time of sale and never changes afterwards.
type SaleItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalPrice int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(si),
		UnitPrice:  float64(si.UnitPrice) / 100,
		TotalPrice: float64(si.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
