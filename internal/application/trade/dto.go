package trade

import (
	"time"

	"github.com/retail/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Purchase Order DTOs ====================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID                      `json:"supplier_id" binding:"required"`
	OperatorID uuid.UUID                      `json:"operator_id" binding:"required"`
	TaxRate    decimal.Decimal                `json:"tax_rate"`
	Items      []CreatePurchaseOrderItemInput `json:"items"`
	Remark     string                         `json:"remark"`
}

// CreatePurchaseOrderItemInput represents an item in the create order request
type CreatePurchaseOrderItemInput struct {
	ProductCode   string           `json:"product_code" binding:"required,min=1,max=50"`
	Quantity      int64            `json:"quantity" binding:"required,gt=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"` // Defaults to the catalog purchase price
	BatchNumber   string           `json:"batch_number"`
	ExpiryDate    *time.Time       `json:"expiry_date"`
}

// AddPurchaseOrderItemRequest represents a request to add an item to a purchase order
type AddPurchaseOrderItemRequest struct {
	ProductCode   string           `json:"product_code" binding:"required,min=1,max=50"`
	Quantity      int64            `json:"quantity" binding:"required,gt=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	BatchNumber   string           `json:"batch_number"`
	ExpiryDate    *time.Time       `json:"expiry_date"`
}

// UpdateOrderItemRequest represents a request to change an item quantity
type UpdateOrderItemRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// CompleteOrderRequest identifies the operator performing a completion
type CompleteOrderRequest struct {
	OperatorID uuid.UUID `json:"operator_id" binding:"required"`
}

// OrderActionRequest identifies the operator performing a lifecycle
// action that carries no other payload, such as approval or delivery.
type OrderActionRequest struct {
	OperatorID uuid.UUID `json:"operator_id" binding:"required"`
}

// CancelOrderRequest represents a request to cancel an order
type CancelOrderRequest struct {
	OperatorID uuid.UUID `json:"operator_id" binding:"required"`
	Reason     string    `json:"reason" binding:"required,min=1,max=500"`
}

// TransitionOrderRequest represents a request to move an order to a target status
type TransitionOrderRequest struct {
	Status     string    `json:"status" binding:"required,orderstatus"`
	OperatorID uuid.UUID `json:"operator_id" binding:"required"`
	Reason     string    `json:"reason"`
}

// PurchaseOrderItemResponse represents a purchase order item in responses
type PurchaseOrderItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Amount        decimal.Decimal `json:"amount"`
	BatchNumber   string          `json:"batch_number,omitempty"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
}

// PurchaseOrderResponse represents a purchase order in responses
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	OrderNumber  string                      `json:"order_number"`
	SupplierID   uuid.UUID                   `json:"supplier_id"`
	OperatorID   uuid.UUID                   `json:"operator_id"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal             `json:"total_amount"`
	TaxRate      decimal.Decimal             `json:"tax_rate"`
	TaxAmount    decimal.Decimal             `json:"tax_amount"`
	FinalAmount  decimal.Decimal             `json:"final_amount"`
	Status       string                      `json:"status"`
	Remark       string                      `json:"remark,omitempty"`
	ApprovedAt   *time.Time                  `json:"approved_at,omitempty"`
	ApprovedBy   *uuid.UUID                  `json:"approved_by,omitempty"`
	DeliveredAt  *time.Time                  `json:"delivered_at,omitempty"`
	DeliveredBy  *uuid.UUID                  `json:"delivered_by,omitempty"`
	CompletedAt  *time.Time                  `json:"completed_at,omitempty"`
	CompletedBy  *uuid.UUID                  `json:"completed_by,omitempty"`
	CancelledAt  *time.Time                  `json:"cancelled_at,omitempty"`
	CancelledBy  *uuid.UUID                  `json:"cancelled_by,omitempty"`
	CancelReason string                      `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// OrderListFilter represents common filter options for listing orders
type OrderListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir"`
	Search    string     `form:"search"`
	Status    string     `form:"status"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ToPurchaseOrderResponse converts a domain order to a response DTO
func ToPurchaseOrderResponse(order *trade.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = PurchaseOrderItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductCode:   item.ProductCode,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
			Amount:        item.Amount,
			BatchNumber:   item.BatchNumber,
			ExpiryDate:    item.ExpiryDate,
		}
	}

	return PurchaseOrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		SupplierID:   order.SupplierID,
		OperatorID:   order.OperatorID,
		Items:        items,
		TotalAmount:  order.TotalAmount,
		TaxRate:      order.TaxRate,
		TaxAmount:    order.TaxAmount,
		FinalAmount:  order.FinalAmount,
		Status:       string(order.Status),
		Remark:       order.Remark,
		ApprovedAt:   order.ApprovedAt,
		ApprovedBy:   order.ApprovedBy,
		DeliveredAt:  order.DeliveredAt,
		DeliveredBy:  order.DeliveredBy,
		CompletedAt:  order.CompletedAt,
		CompletedBy:  order.CompletedBy,
		CancelledAt:  order.CancelledAt,
		CancelledBy:  order.CancelledBy,
		CancelReason: order.CancelReason,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToPurchaseOrderResponses converts a slice of domain orders to response DTOs
func ToPurchaseOrderResponses(orders []trade.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}

// ==================== Sale Order DTOs ====================

// CreateSaleOrderRequest represents a request to create a sale order.
// Creating the order commits the sale: stock is decremented as part of
// the same transaction.
type CreateSaleOrderRequest struct {
	Customer       string                     `json:"customer" binding:"max=200"`
	OperatorID     uuid.UUID                  `json:"operator_id" binding:"required"`
	PaymentMethod  string                     `json:"payment_method" binding:"required"`
	Items          []CreateSaleOrderItemInput `json:"items" binding:"required,min=1"`
	OrderDiscount  *decimal.Decimal           `json:"order_discount"`
	ReceivedAmount *decimal.Decimal           `json:"received_amount"` // When set, payment is taken immediately
}

// CreateSaleOrderItemInput represents an item in the create sale request
type CreateSaleOrderItemInput struct {
	ProductCode  string          `json:"product_code" binding:"required,min=1,max=50"`
	Quantity     int64           `json:"quantity" binding:"required,gt=0"`
	DiscountRate decimal.Decimal `json:"discount_rate"` // 0..1, flat per-item rate
}

// PaySaleOrderRequest represents a payment against a pending sale order
type PaySaleOrderRequest struct {
	ReceivedAmount decimal.Decimal `json:"received_amount" binding:"required"`
	OperatorID     uuid.UUID       `json:"operator_id" binding:"required"`
}

// SaleOrderItemResponse represents a sale order item in responses
type SaleOrderItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	DiscountRate  decimal.Decimal `json:"discount_rate"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Amount        decimal.Decimal `json:"amount"`
}

// SaleOrderResponse represents a sale order in responses
type SaleOrderResponse struct {
	ID             uuid.UUID               `json:"id"`
	OrderNumber    string                  `json:"order_number"`
	Customer       string                  `json:"customer,omitempty"`
	OperatorID     uuid.UUID               `json:"operator_id"`
	Items          []SaleOrderItemResponse `json:"items"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	DiscountAmount decimal.Decimal         `json:"discount_amount"`
	FinalAmount    decimal.Decimal         `json:"final_amount"`
	ReceivedAmount decimal.Decimal         `json:"received_amount"`
	ChangeAmount   decimal.Decimal         `json:"change_amount"`
	PaymentMethod  string                  `json:"payment_method"`
	Status         string                  `json:"status"`
	PaidAt         *time.Time              `json:"paid_at,omitempty"`
	PaidBy         *uuid.UUID              `json:"paid_by,omitempty"`
	CompletedAt    *time.Time              `json:"completed_at,omitempty"`
	CompletedBy    *uuid.UUID              `json:"completed_by,omitempty"`
	CancelledAt    *time.Time              `json:"cancelled_at,omitempty"`
	CancelledBy    *uuid.UUID              `json:"cancelled_by,omitempty"`
	CancelReason   string                  `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// ToSaleOrderResponse converts a domain order to a response DTO
func ToSaleOrderResponse(order *trade.SaleOrder) SaleOrderResponse {
	items := make([]SaleOrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = SaleOrderItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductCode:   item.ProductCode,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			OriginalPrice: item.OriginalPrice,
			DiscountRate:  item.DiscountRate,
			SalePrice:     item.SalePrice,
			Amount:        item.Amount,
		}
	}

	return SaleOrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Customer:       order.Customer,
		OperatorID:     order.OperatorID,
		Items:          items,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		FinalAmount:    order.FinalAmount,
		ReceivedAmount: order.ReceivedAmount,
		ChangeAmount:   order.ChangeAmount,
		PaymentMethod:  string(order.PaymentMethod),
		Status:         string(order.Status),
		PaidAt:         order.PaidAt,
		PaidBy:         order.PaidBy,
		CompletedAt:    order.CompletedAt,
		CompletedBy:    order.CompletedBy,
		CancelledAt:    order.CancelledAt,
		CancelledBy:    order.CancelledBy,
		CancelReason:   order.CancelReason,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

// ToSaleOrderResponses converts a slice of domain orders to response DTOs
func ToSaleOrderResponses(orders []trade.SaleOrder) []SaleOrderResponse {
	responses := make([]SaleOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSaleOrderResponse(&orders[i])
	}
	return responses
}

// ==================== Return Order DTOs ====================

// CreateReturnOrderRequest represents a request to create a return order
type CreateReturnOrderRequest struct {
	SaleOrderNumber string                       `json:"sale_order_number" binding:"required,min=1,max=50"`
	OperatorID      uuid.UUID                    `json:"operator_id" binding:"required"`
	Reason          string                       `json:"reason" binding:"max=500"`
	Items           []CreateReturnOrderItemInput `json:"items" binding:"required,min=1"`
}

// CreateReturnOrderItemInput represents an item in the create return request
type CreateReturnOrderItemInput struct {
	ProductCode string `json:"product_code" binding:"required,min=1,max=50"`
	Quantity    int64  `json:"quantity" binding:"required,gt=0"`
	Reason      string `json:"reason" binding:"max=500"`
}

// ReturnOrderItemResponse represents a return order item in responses
type ReturnOrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	ReturnPrice decimal.Decimal `json:"return_price"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason,omitempty"`
}

// ReturnOrderResponse represents a return order in responses
type ReturnOrderResponse struct {
	ID              uuid.UUID                 `json:"id"`
	ReturnNumber    string                    `json:"return_number"`
	SaleOrderNumber string                    `json:"sale_order_number"`
	OperatorID      uuid.UUID                 `json:"operator_id"`
	Items           []ReturnOrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	RefundAmount    decimal.Decimal           `json:"refund_amount"`
	Status          string                    `json:"status"`
	Reason          string                    `json:"reason,omitempty"`
	ApprovedAt      *time.Time                `json:"approved_at,omitempty"`
	ApprovedBy      *uuid.UUID                `json:"approved_by,omitempty"`
	CompletedAt     *time.Time                `json:"completed_at,omitempty"`
	CompletedBy     *uuid.UUID                `json:"completed_by,omitempty"`
	CancelledAt     *time.Time                `json:"cancelled_at,omitempty"`
	CancelledBy     *uuid.UUID                `json:"cancelled_by,omitempty"`
	CancelReason    string                    `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// ToReturnOrderResponse converts a domain order to a response DTO
func ToReturnOrderResponse(order *trade.ReturnOrder) ReturnOrderResponse {
	items := make([]ReturnOrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = ReturnOrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			ReturnPrice: item.ReturnPrice,
			Amount:      item.Amount,
			Reason:      item.Reason,
		}
	}

	return ReturnOrderResponse{
		ID:              order.ID,
		ReturnNumber:    order.ReturnNumber,
		SaleOrderNumber: order.SaleOrderNumber,
		OperatorID:      order.OperatorID,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		RefundAmount:    order.RefundAmount,
		Status:          string(order.Status),
		Reason:          order.Reason,
		ApprovedAt:      order.ApprovedAt,
		ApprovedBy:      order.ApprovedBy,
		CompletedAt:     order.CompletedAt,
		CompletedBy:     order.CompletedBy,
		CancelledAt:     order.CancelledAt,
		CancelledBy:     order.CancelledBy,
		CancelReason:    order.CancelReason,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ToReturnOrderResponses converts a slice of domain orders to response DTOs
func ToReturnOrderResponses(orders []trade.ReturnOrder) []ReturnOrderResponse {
	responses := make([]ReturnOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToReturnOrderResponse(&orders[i])
	}
	return responses
}
