package trade

import (
	"github.com/retail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for trade aggregates
const (
	EventTypePurchaseOrderCreated   = "trade.purchase_order.created"
	EventTypePurchaseOrderCompleted = "trade.purchase_order.completed"
	EventTypePurchaseOrderCancelled = "trade.purchase_order.cancelled"
	EventTypeSaleOrderCreated       = "trade.sale_order.created"
	EventTypeSaleOrderPaid          = "trade.sale_order.paid"
	EventTypeSaleOrderCancelled     = "trade.sale_order.cancelled"
	EventTypeReturnOrderCreated     = "trade.return_order.created"
	EventTypeReturnOrderCompleted   = "trade.return_order.completed"
)

// PurchaseOrderCreatedEvent is emitted when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	SupplierID  uuid.UUID `json:"supplier_id"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, "PurchaseOrder", order.ID),
		OrderNumber:     order.OrderNumber,
		SupplierID:      order.SupplierID,
	}
}

// PurchaseOrderCompletedEvent is emitted on the committing transition of
// a purchase order
type PurchaseOrderCompletedEvent struct {
	shared.BaseDomainEvent
	OrderNumber   string          `json:"order_number"`
	OperatorID    uuid.UUID       `json:"operator_id"`
	TotalQuantity int64           `json:"total_quantity"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
}

// NewPurchaseOrderCompletedEvent creates a new PurchaseOrderCompletedEvent
func NewPurchaseOrderCompletedEvent(order *PurchaseOrder, operatorID uuid.UUID) *PurchaseOrderCompletedEvent {
	return &PurchaseOrderCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCompleted, "PurchaseOrder", order.ID),
		OrderNumber:     order.OrderNumber,
		OperatorID:      operatorID,
		TotalQuantity:   order.TotalQuantity(),
		FinalAmount:     order.FinalAmount,
	}
}

// PurchaseOrderCancelledEvent is emitted when a purchase order is cancelled
type PurchaseOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	Reason      string `json:"reason"`
}

// NewPurchaseOrderCancelledEvent creates a new PurchaseOrderCancelledEvent
func NewPurchaseOrderCancelledEvent(order *PurchaseOrder, reason string) *PurchaseOrderCancelledEvent {
	return &PurchaseOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCancelled, "PurchaseOrder", order.ID),
		OrderNumber:     order.OrderNumber,
		Reason:          reason,
	}
}

// SaleOrderCreatedEvent is emitted on the committing transition of a
// sale order (creation reserves stock)
type SaleOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	Customer    string `json:"customer"`
}

// NewSaleOrderCreatedEvent creates a new SaleOrderCreatedEvent
func NewSaleOrderCreatedEvent(order *SaleOrder) *SaleOrderCreatedEvent {
	return &SaleOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleOrderCreated, "SaleOrder", order.ID),
		OrderNumber:     order.OrderNumber,
		Customer:        order.Customer,
	}
}

// SaleOrderPaidEvent is emitted when a sale order is paid
type SaleOrderPaidEvent struct {
	shared.BaseDomainEvent
	OrderNumber    string          `json:"order_number"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
}

// NewSaleOrderPaidEvent creates a new SaleOrderPaidEvent
func NewSaleOrderPaidEvent(order *SaleOrder) *SaleOrderPaidEvent {
	return &SaleOrderPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleOrderPaid, "SaleOrder", order.ID),
		OrderNumber:     order.OrderNumber,
		FinalAmount:     order.FinalAmount,
		ReceivedAmount:  order.ReceivedAmount,
		PaymentMethod:   order.PaymentMethod,
	}
}

// SaleOrderCancelledEvent is emitted when a sale order is cancelled
type SaleOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	Reason      string `json:"reason"`
}

// NewSaleOrderCancelledEvent creates a new SaleOrderCancelledEvent
func NewSaleOrderCancelledEvent(order *SaleOrder, reason string) *SaleOrderCancelledEvent {
	return &SaleOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleOrderCancelled, "SaleOrder", order.ID),
		OrderNumber:     order.OrderNumber,
		Reason:          reason,
	}
}

// ReturnOrderCreatedEvent is emitted when a return order is created
type ReturnOrderCreatedEvent struct {
	shared.BaseDomainEvent
	ReturnNumber    string `json:"return_number"`
	SaleOrderNumber string `json:"sale_order_number"`
}

// NewReturnOrderCreatedEvent creates a new ReturnOrderCreatedEvent
func NewReturnOrderCreatedEvent(order *ReturnOrder) *ReturnOrderCreatedEvent {
	return &ReturnOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReturnOrderCreated, "ReturnOrder", order.ID),
		ReturnNumber:    order.ReturnNumber,
		SaleOrderNumber: order.SaleOrderNumber,
	}
}

// ReturnOrderCompletedEvent is emitted on the committing transition of a
// return order
type ReturnOrderCompletedEvent struct {
	shared.BaseDomainEvent
	ReturnNumber  string          `json:"return_number"`
	OperatorID    uuid.UUID       `json:"operator_id"`
	TotalQuantity int64           `json:"total_quantity"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
}

// NewReturnOrderCompletedEvent creates a new ReturnOrderCompletedEvent
func NewReturnOrderCompletedEvent(order *ReturnOrder, operatorID uuid.UUID) *ReturnOrderCompletedEvent {
	return &ReturnOrderCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReturnOrderCompleted, "ReturnOrder", order.ID),
		ReturnNumber:    order.ReturnNumber,
		OperatorID:      operatorID,
		TotalQuantity:   order.TotalQuantity(),
		RefundAmount:    order.RefundAmount,
	}
}
