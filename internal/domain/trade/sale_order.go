package trade

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleOrderItem represents a line item in a sale order.
// SalePrice is the effective unit price after the per-item discount
// rate has been applied to OriginalPrice.
type SaleOrderItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	ProductCode   string          `gorm:"type:varchar(50);not null"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	Quantity      int64           `gorm:"not null"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Catalog price before discount
	DiscountRate  decimal.Decimal `gorm:"type:decimal(8,4);not null"`  // Flat per-item rate (0..1)
	SalePrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"` // OriginalPrice * (1 - DiscountRate)
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * SalePrice
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleOrderItem) TableName() string {
	return "sale_order_items"
}

// NewSaleOrderItem creates a new sale order item
func NewSaleOrderItem(orderID, productID uuid.UUID, productCode, productName string, quantity int64, originalPrice valueobject.Money, discountRate decimal.Decimal) (*SaleOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if originalPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if discountRate.IsNegative() || discountRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_RATE", "Discount rate must be between 0 and 1")
	}

	salePrice := DiscountedUnitPrice(originalPrice.Amount(), discountRate)

	now := time.Now()
	return &SaleOrderItem{
		ID:            uuid.New(),
		OrderID:       orderID,
		ProductID:     productID,
		ProductCode:   productCode,
		ProductName:   productName,
		Quantity:      quantity,
		OriginalPrice: originalPrice.Amount(),
		DiscountRate:  discountRate,
		SalePrice:     salePrice,
		Amount:        ItemAmount(quantity, salePrice),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SaleOrder represents a sale order aggregate root.
// Stock is reserved at creation time: creating the order is the
// committing transition that decrements product quantities.
type SaleOrder struct {
	shared.BaseAggregateRoot
	OrderNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Customer       string          `gorm:"type:varchar(200)"` // Free-form customer label
	OperatorID     uuid.UUID       `gorm:"type:uuid;not null"`
	Items          []SaleOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Sum of item amounts
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Order-level discount
	FinalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // TotalAmount - DiscountAmount
	ReceivedAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ChangeAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null"`
	Status         SaleOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaidAt         *time.Time
	PaidBy         *uuid.UUID `gorm:"type:uuid"`
	CompletedAt    *time.Time
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
	CancelledAt    *time.Time
	CancelledBy    *uuid.UUID `gorm:"type:uuid"`
	CancelReason   string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (SaleOrder) TableName() string {
	return "sale_orders"
}

// NewSaleOrder creates a new sale order in PENDING status
func NewSaleOrder(orderNumber, customer string, operatorID uuid.UUID, paymentMethod PaymentMethod) (*SaleOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if operatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	order := &SaleOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		Customer:          customer,
		OperatorID:        operatorID,
		Items:             make([]SaleOrderItem, 0),
		TotalAmount:       decimal.Zero,
		DiscountAmount:    decimal.Zero,
		FinalAmount:       decimal.Zero,
		ReceivedAmount:    decimal.Zero,
		ChangeAmount:      decimal.Zero,
		PaymentMethod:     paymentMethod,
		Status:            SaleOrderStatusPending,
	}

	order.AddDomainEvent(NewSaleOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a new item to the order
// Only allowed in PENDING status
func (o *SaleOrder) AddItem(productID uuid.UUID, productCode, productName string, quantity int64, originalPrice valueobject.Money, discountRate decimal.Decimal) (*SaleOrderItem, error) {
	if o.Status != SaleOrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in order")
		}
	}

	item, err := NewSaleOrderItem(o.ID, productID, productCode, productName, quantity, originalPrice, discountRate)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return item, nil
}

// ApplyDiscount applies an order-level discount
// Only allowed in PENDING status
func (o *SaleOrder) ApplyDiscount(discount valueobject.Money) error {
	if o.Status != SaleOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot apply discount to a non-pending order")
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discount.Amount().GreaterThan(o.TotalAmount) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed total amount")
	}

	o.DiscountAmount = discount.Amount()
	o.FinalAmount = SaleFinalAmount(o.TotalAmount, o.DiscountAmount)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Pay records payment and transitions the order from PENDING to PAID.
// Cash payments may over-tender and produce change; every other payment
// method must match the final amount exactly.
func (o *SaleOrder) Pay(received valueobject.Money, operatorID uuid.UUID) error {
	if err := guardTransition(saleOrderTransitions, o.Status, SaleOrderStatusPaid); err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot pay an order without items")
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	final := o.FinalAmount
	if o.PaymentMethod.RequiresExactTender() {
		if !received.Amount().Equal(final) {
			return shared.NewDomainError("INVALID_TENDER", "Received amount must equal final amount for non-cash payment")
		}
	} else if received.Amount().LessThan(final) {
		return shared.NewDomainError("INVALID_TENDER", "Received amount is less than final amount")
	}

	now := time.Now()
	o.ReceivedAmount = received.Amount()
	o.ChangeAmount = ChangeAmount(o.ReceivedAmount, final)
	o.Status = SaleOrderStatusPaid
	o.PaidAt = &now
	o.PaidBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewSaleOrderPaidEvent(o))

	return nil
}

// Complete transitions the order from PAID to COMPLETED.
// Stock was already decremented at creation, so completion carries no
// ledger effect.
func (o *SaleOrder) Complete(operatorID uuid.UUID) error {
	if err := guardTransition(saleOrderTransitions, o.Status, SaleOrderStatusCompleted); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	now := time.Now()
	o.Status = SaleOrderStatusCompleted
	o.CompletedAt = &now
	o.CompletedBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Cancel cancels the order with a reason. Cancellation does not restock:
// returns are the only path that puts sold quantities back.
func (o *SaleOrder) Cancel(operatorID uuid.UUID, reason string) error {
	if err := guardTransition(saleOrderTransitions, o.Status, SaleOrderStatusCancelled); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	now := time.Now()
	o.Status = SaleOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelledBy = &operatorID
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewSaleOrderCancelledEvent(o, reason))

	return nil
}

// recalculateTotals recalculates the order totals
func (o *SaleOrder) recalculateTotals() {
	amounts := make([]decimal.Decimal, len(o.Items))
	for idx, item := range o.Items {
		amounts[idx] = item.Amount
	}
	o.TotalAmount = OrderTotal(amounts...)
	o.FinalAmount = SaleFinalAmount(o.TotalAmount, o.DiscountAmount)
}

// TotalQuantity returns the total sold quantity across all items
func (o *SaleOrder) TotalQuantity() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// GetItemByProduct returns an item by product ID
func (o *SaleOrder) GetItemByProduct(productID uuid.UUID) *SaleOrderItem {
	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			return &o.Items[idx]
		}
	}
	return nil
}

// GetItemByProductCode returns an item by product code
func (o *SaleOrder) GetItemByProductCode(code string) *SaleOrderItem {
	for idx := range o.Items {
		if o.Items[idx].ProductCode == code {
			return &o.Items[idx]
		}
	}
	return nil
}

// ItemCount returns the number of items in the order
func (o *SaleOrder) ItemCount() int {
	return len(o.Items)
}

// IsTerminal returns true if order is in a terminal state
func (o *SaleOrder) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// GetFinalAmountMoney returns final amount as Money
func (o *SaleOrder) GetFinalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.FinalAmount)
}

// GetChangeAmountMoney returns change amount as Money
func (o *SaleOrder) GetChangeAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.ChangeAmount)
}
