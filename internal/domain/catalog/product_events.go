package catalog

import (
	"github.com/retail/backend/internal/domain/shared"
)

// Event types for product aggregate
const (
	EventTypeProductCreated = "catalog.product.created"
)

// ProductCreatedEvent is emitted when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID),
		ProductCode:     product.Code,
		ProductName:     product.Name,
	}
}
