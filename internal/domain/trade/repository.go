package trade

import (
	"context"

	"github.com/retail/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the persistence contract for purchase orders
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]

	// FindByOrderNumber finds a purchase order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// GenerateOrderNumber generates the next unique order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}

// SaleOrderRepository defines the persistence contract for sale orders
type SaleOrderRepository interface {
	shared.Repository[SaleOrder]

	// FindByOrderNumber finds a sale order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SaleOrder, error)

	// GenerateOrderNumber generates the next unique order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}

// ReturnOrderRepository defines the persistence contract for return orders
type ReturnOrderRepository interface {
	shared.Repository[ReturnOrder]

	// FindByReturnNumber finds a return order by its return number
	FindByReturnNumber(ctx context.Context, returnNumber string) (*ReturnOrder, error)

	// GenerateReturnNumber generates the next unique return number
	GenerateReturnNumber(ctx context.Context) (string, error)
}
