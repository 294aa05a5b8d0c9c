package inventory

import (
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
)

// Event types for inventory operations
const (
	EventTypeStockAdjusted   = "inventory.stock.adjusted"
	EventTypeStockBelowAlert = "inventory.stock.below_alert"
)

// StockAdjustedEvent is emitted for every ledger adjustment
type StockAdjustedEvent struct {
	shared.BaseDomainEvent
	ProductCode string       `json:"product_code"`
	Delta       int64        `json:"delta"`
	Kind        MovementKind `json:"kind"`
	NewQuantity int64        `json:"new_quantity"`
	OrderNumber string       `json:"order_number"`
}

// NewStockAdjustedEvent creates a new StockAdjustedEvent
func NewStockAdjustedEvent(product *catalog.Product, movement *StockMovement) *StockAdjustedEvent {
	return &StockAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAdjusted, "Product", product.ID),
		ProductCode:     product.Code,
		Delta:           movement.Delta,
		Kind:            movement.Kind,
		NewQuantity:     movement.QuantityAfter,
		OrderNumber:     movement.OrderNumber,
	}
}

// StockBelowAlertEvent is emitted when a decrease leaves a product at or
// below its alert threshold
type StockBelowAlertEvent struct {
	shared.BaseDomainEvent
	ProductCode   string `json:"product_code"`
	ProductName   string `json:"product_name"`
	Quantity      int64  `json:"quantity"`
	AlertQuantity int64  `json:"alert_quantity"`
}

// NewStockBelowAlertEvent creates a new StockBelowAlertEvent
func NewStockBelowAlertEvent(product *catalog.Product) *StockBelowAlertEvent {
	return &StockBelowAlertEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowAlert, "Product", product.ID),
		ProductCode:     product.Code,
		ProductName:     product.Name,
		Quantity:        product.Quantity,
		AlertQuantity:   product.AlertQuantity,
	}
}
