package inventory

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind represents the operation behind a stock movement
type MovementKind string

const (
	// MovementKindPurchase is stock received through a completed purchase order
	MovementKindPurchase MovementKind = "PURCHASE"
	// MovementKindSale is stock reserved by a created sale order
	MovementKindSale MovementKind = "SALE"
	// MovementKindReturn is stock restored through a completed return order
	MovementKindReturn MovementKind = "RETURN"
)

// String returns the string representation of MovementKind
func (k MovementKind) String() string {
	return string(k)
}

// IsValid returns true if the movement kind is valid
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementKindPurchase, MovementKindSale, MovementKindReturn:
		return true
	}
	return false
}

// Direction returns the sign the quantity delta must carry for this kind
func (k MovementKind) Direction() int64 {
	if k == MovementKindSale {
		return -1
	}
	return 1
}

// StockMovement is an append-only ledger entry recording one change to a
// product's on-hand quantity. Once written, movements are never modified
// or deleted; they are the sole audit trail for stock changes.
type StockMovement struct {
	shared.BaseEntity
	ProductID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductCode    string           `gorm:"type:varchar(50);not null;index"`
	Delta          int64            `gorm:"not null"` // Signed quantity change
	Kind           MovementKind     `gorm:"type:varchar(20);not null;index"`
	QuantityBefore int64            `gorm:"not null"` // On-hand quantity before the change
	QuantityAfter  int64            `gorm:"not null"` // On-hand quantity after the change
	OperatorID     uuid.UUID        `gorm:"type:uuid;not null"`
	OrderNumber    string           `gorm:"type:varchar(50);not null;index"` // Source order
	PurchasePrice  *decimal.Decimal `gorm:"type:decimal(18,4)"`              // Set for purchase movements
	OccurredAt     time.Time        `gorm:"type:timestamptz;not null;index"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new stock movement record
func NewStockMovement(
	productID uuid.UUID,
	productCode string,
	delta int64,
	kind MovementKind,
	quantityBefore int64,
	quantityAfter int64,
	operatorID uuid.UUID,
	orderNumber string,
) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if delta == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity delta cannot be zero")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_KIND", "Invalid movement kind")
	}
	if operatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}

	return &StockMovement{
		BaseEntity:     shared.NewBaseEntity(),
		ProductID:      productID,
		ProductCode:    productCode,
		Delta:          delta,
		Kind:           kind,
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		OperatorID:     operatorID,
		OrderNumber:    orderNumber,
		OccurredAt:     time.Now(),
	}, nil
}

// WithPurchasePrice sets the purchase price for the movement
func (m *StockMovement) WithPurchasePrice(price decimal.Decimal) *StockMovement {
	m.PurchasePrice = &price
	return m
}
