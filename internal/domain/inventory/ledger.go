package inventory

import (
	"fmt"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the domain service owning every product quantity mutation.
// It applies a signed delta to a product and produces the matching
// append-only movement record; each call yields exactly one movement.
// Callers are responsible for persisting both the product and the
// movement inside one transaction.
type Ledger struct{}

// NewLedger creates a new Ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Adjust applies a quantity delta to the product and returns the
// movement to append. The delta's sign must match the movement kind
// (sales decrease, purchases and returns increase). A delta that would
// drive the quantity negative fails with ErrInsufficientStock and
// leaves the product untouched.
func (l *Ledger) Adjust(
	product *catalog.Product,
	delta int64,
	kind MovementKind,
	operatorID uuid.UUID,
	orderNumber string,
	purchasePrice *decimal.Decimal,
) (*StockMovement, error) {
	if product == nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product cannot be nil")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_KIND", "Invalid movement kind")
	}
	if delta == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity delta cannot be zero")
	}
	if delta*kind.Direction() < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY",
			fmt.Sprintf("Delta sign does not match %s movement", kind))
	}

	before := product.Quantity
	if err := product.AdjustQuantity(delta); err != nil {
		return nil, err
	}

	movement, err := NewStockMovement(
		product.ID,
		product.Code,
		delta,
		kind,
		before,
		product.Quantity,
		operatorID,
		orderNumber,
	)
	if err != nil {
		return nil, err
	}
	if purchasePrice != nil {
		movement.WithPurchasePrice(*purchasePrice)
	}

	product.AddDomainEvent(NewStockAdjustedEvent(product, movement))
	if delta < 0 && product.IsBelowAlert() {
		product.AddDomainEvent(NewStockBelowAlertEvent(product))
	}

	return movement, nil
}
