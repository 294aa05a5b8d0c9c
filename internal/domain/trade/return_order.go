package trade

import (
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnOrderItem represents a line item in a return order
type ReturnOrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductCode string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	ReturnPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Refund per unit
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * ReturnPrice
	Reason      string          `gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReturnOrderItem) TableName() string {
	return "return_order_items"
}

// NewReturnOrderItem creates a new return order item
func NewReturnOrderItem(orderID, productID uuid.UUID, productCode, productName string, quantity int64, returnPrice valueobject.Money, reason string) (*ReturnOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if returnPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Return price cannot be negative")
	}

	now := time.Now()
	return &ReturnOrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductCode: productCode,
		ProductName: productName,
		Quantity:    quantity,
		ReturnPrice: returnPrice.Amount(),
		Amount:      ItemAmount(quantity, returnPrice.Amount()),
		Reason:      reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity updates the item quantity and recalculates the amount
func (i *ReturnOrderItem) UpdateQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = ItemAmount(quantity, i.ReturnPrice)
	i.UpdatedAt = time.Now()

	return nil
}

// ReturnOrder represents a return order aggregate root. It references
// the original sale order; completing the return is the committing
// transition that puts returned quantities back into stock.
type ReturnOrder struct {
	shared.BaseAggregateRoot
	ReturnNumber    string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	SaleOrderNumber string            `gorm:"type:varchar(50);not null;index"`
	OperatorID      uuid.UUID         `gorm:"type:uuid;not null"`
	Items           []ReturnOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"` // Sum of item amounts
	RefundAmount    decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"` // Equals TotalAmount
	Status          ReturnOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Reason          string            `gorm:"type:varchar(500)"`
	ApprovedAt      *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	CompletedAt     *time.Time
	CompletedBy     *uuid.UUID `gorm:"type:uuid"`
	CancelledAt     *time.Time
	CancelledBy     *uuid.UUID `gorm:"type:uuid"`
	CancelReason    string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (ReturnOrder) TableName() string {
	return "return_orders"
}

// NewReturnOrder creates a new return order in PENDING status
func NewReturnOrder(returnNumber, saleOrderNumber string, operatorID uuid.UUID, reason string) (*ReturnOrder, error) {
	if returnNumber == "" {
		return nil, shared.NewDomainError("INVALID_RETURN_NUMBER", "Return number cannot be empty")
	}
	if len(returnNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_RETURN_NUMBER", "Return number cannot exceed 50 characters")
	}
	if saleOrderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Original sale order number is required")
	}
	if operatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	order := &ReturnOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ReturnNumber:      returnNumber,
		SaleOrderNumber:   saleOrderNumber,
		OperatorID:        operatorID,
		Items:             make([]ReturnOrderItem, 0),
		TotalAmount:       decimal.Zero,
		RefundAmount:      decimal.Zero,
		Status:            ReturnOrderStatusPending,
		Reason:            reason,
	}

	order.AddDomainEvent(NewReturnOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a new item to the return order
// Only allowed in PENDING status
func (o *ReturnOrder) AddItem(productID uuid.UUID, productCode, productName string, quantity int64, returnPrice valueobject.Money, reason string) (*ReturnOrderItem, error) {
	if o.Status != ReturnOrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending return")
	}

	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in return")
		}
	}

	item, err := NewReturnOrderItem(o.ID, productID, productCode, productName, quantity, returnPrice, reason)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return item, nil
}

// UpdateItemQuantity updates the quantity of an existing item
// Only allowed in PENDING status
func (o *ReturnOrder) UpdateItemQuantity(itemID uuid.UUID, quantity int64) error {
	if o.Status != ReturnOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items in a non-pending return")
	}

	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			if err := o.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			o.recalculateTotals()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Return item not found")
}

// RemoveItem removes an item from the return order
// Only allowed in PENDING status
func (o *ReturnOrder) RemoveItem(itemID uuid.UUID) error {
	if o.Status != ReturnOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a non-pending return")
	}

	for idx, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.recalculateTotals()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Return item not found")
}

// SetReason sets the order-level return reason
func (o *ReturnOrder) SetReason(reason string) {
	o.Reason = reason
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Approve transitions the return from PENDING to APPROVED and records
// the acting operator. Requires at least one item.
func (o *ReturnOrder) Approve(operatorID uuid.UUID) error {
	if err := guardTransition(returnOrderTransitions, o.Status, ReturnOrderStatusApproved); err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot approve return without items")
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	now := time.Now()
	o.Status = ReturnOrderStatusApproved
	o.ApprovedAt = &now
	o.ApprovedBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Complete finalizes the return. This is the committing transition: the
// caller must increase stock for every item in the same transaction.
func (o *ReturnOrder) Complete(operatorID uuid.UUID) error {
	if err := guardTransition(returnOrderTransitions, o.Status, ReturnOrderStatusCompleted); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	now := time.Now()
	o.Status = ReturnOrderStatusCompleted
	o.CompletedAt = &now
	o.CompletedBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewReturnOrderCompletedEvent(o, operatorID))

	return nil
}

// Cancel cancels the return with a reason and records the acting operator
func (o *ReturnOrder) Cancel(operatorID uuid.UUID, reason string) error {
	if err := guardTransition(returnOrderTransitions, o.Status, ReturnOrderStatusCancelled); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	now := time.Now()
	o.Status = ReturnOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelledBy = &operatorID
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// recalculateTotals recalculates the return totals
func (o *ReturnOrder) recalculateTotals() {
	amounts := make([]decimal.Decimal, len(o.Items))
	for idx, item := range o.Items {
		amounts[idx] = item.Amount
	}
	o.TotalAmount = OrderTotal(amounts...)
	o.RefundAmount = RefundAmount(o.TotalAmount)
}

// TotalQuantity returns the total returned quantity across all items
func (o *ReturnOrder) TotalQuantity() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// ItemCount returns the number of items in the return
func (o *ReturnOrder) ItemCount() int {
	return len(o.Items)
}

// IsTerminal returns true if the return is in a terminal state
func (o *ReturnOrder) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// GetRefundAmountMoney returns the refund amount as Money
func (o *ReturnOrder) GetRefundAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.RefundAmount)
}
