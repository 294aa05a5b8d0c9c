package catalog

import (
	"strings"
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product/SKU in the store catalog.
// It is the aggregate root for product-related operations.
// On-hand quantity is mutated exclusively through the stock ledger.
type Product struct {
	shared.BaseAggregateRoot
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Category      string          `gorm:"type:varchar(100);index"`
	Unit          string          `gorm:"type:varchar(20);not null"`             // Unit label (e.g., "pcs", "kg", "box")
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Cost price
	SalePrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Unit sale price
	Quantity      int64           `gorm:"not null;default:0"`                    // On-hand quantity, never negative
	AlertQuantity int64           `gorm:"not null;default:0"`                    // Low-stock alert threshold
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
	ExpiryDate    *time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, unit string, purchasePrice, salePrice valueobject.Money) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Unit:              unit,
		PurchasePrice:     purchasePrice.Amount(),
		SalePrice:         salePrice.Amount(),
		Quantity:          0,
		AlertQuantity:     0,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, category, unit string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateUnit(unit); err != nil {
		return err
	}

	p.Name = name
	p.Category = category
	p.Unit = unit
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices updates both purchase and sale prices
func (p *Product) SetPrices(purchasePrice, salePrice valueobject.Money) error {
	if purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	p.PurchasePrice = purchasePrice.Amount()
	p.SalePrice = salePrice.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetAlertQuantity sets the low-stock alert threshold
func (p *Product) SetAlertQuantity(threshold int64) error {
	if threshold < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Alert threshold cannot be negative")
	}

	p.AlertQuantity = threshold
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetSupplier sets the supplier reference
func (p *Product) SetSupplier(supplierID *uuid.UUID) {
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetExpiryDate sets the optional expiry date
func (p *Product) SetExpiryDate(expiry *time.Time) {
	p.ExpiryDate = expiry
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// AdjustQuantity applies a signed quantity delta to the on-hand quantity.
// The resulting quantity must never be negative. Callers must go through
// the stock ledger so every adjustment leaves a movement record.
func (p *Product) AdjustQuantity(delta int64) error {
	if delta == 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity delta cannot be zero")
	}

	newQuantity := p.Quantity + delta
	if newQuantity < 0 {
		return shared.ErrInsufficientStock
	}

	p.Quantity = newQuantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsBelowAlert returns true if the on-hand quantity is at or below the alert threshold
func (p *Product) IsBelowAlert() bool {
	return p.AlertQuantity > 0 && p.Quantity <= p.AlertQuantity
}

// HasSufficientStock returns true if at least the given quantity is on hand
func (p *Product) HasSufficientStock(quantity int64) bool {
	return p.Quantity >= quantity
}

// GetPurchasePriceMoney returns the purchase price as Money
func (p *Product) GetPurchasePriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.PurchasePrice)
}

// GetSalePriceMoney returns the sale price as Money
func (p *Product) GetSalePriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.SalePrice)
}

// validateProductCode validates the product code
func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	// Code should be alphanumeric with underscores and hyphens
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validateUnit validates the unit label
func validateUnit(unit string) error {
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
