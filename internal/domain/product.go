package domain

import (
	"strings"      // String trimming
	"unicode/utf8" // Name length

	"github.com/shopspring/decimal" // Exact decimal prices
)

// Product Model
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                                   // Primary key
	Name        string          `gorm:"size:100;not null" json:"name"`                          // Product name
	Description string          `gorm:"type:text" json:"description"`                           // Free-form description, may be empty
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`               // Non-negative price
	UserID      uint            `gorm:"index;not null" json:"owner_id"`                         // Foreign key to the owning User
	User        *User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owner, only used for the FK constraint
}

// Column limits of products.name and products.price (decimal(10,2))
const (
	MaxNameLength  = 100
	PriceScale     = 2
	maxPriceDigits = 8 // Integer digits left by decimal(10,2)
)

// priceCeiling is the smallest price that no longer fits the column
var priceCeiling = decimal.New(1, maxPriceDigits)

// ProductFields holds the owner-editable part of a Product
type ProductFields struct {
	Name        string          // Product name
	Description string          // Product description
	Price       decimal.Decimal // Product price
}

// Validate checks the invariants every stored product must satisfy
func (f ProductFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrInvalidProduct // Name is required
	}
	if utf8.RuneCountInString(f.Name) > MaxNameLength {
		return ErrInvalidProduct // Would not fit the column
	}
	if f.Price.IsNegative() {
		return ErrInvalidProduct // Price cannot be negative
	}
	if !f.Price.Equal(f.Price.Round(PriceScale)) {
		return ErrInvalidProduct // No fractions of a cent; MySQL would round silently
	}
	if f.Price.GreaterThanOrEqual(priceCeiling) {
		return ErrInvalidProduct // Out of range for the column
	}
	return nil
}

// Apply copies the editable fields onto p; the owner is left untouched
func (f ProductFields) Apply(p *Product) {
	p.Name = f.Name
	p.Description = f.Description
	p.Price = f.Price
}

// IsOwnedBy reports whether userID owns the product
func (p *Product) IsOwnedBy(userID uint) bool {
	return p.UserID == userID
}
