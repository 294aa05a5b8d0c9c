package trade

import (
	"fmt"
	"time"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	ProductCode   string          `gorm:"type:varchar(50);not null"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	Quantity      int64           `gorm:"not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Cost per unit
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * PurchasePrice
	BatchNumber   string          `gorm:"type:varchar(50)"`
	ExpiryDate    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order item
func NewPurchaseOrderItem(orderID, productID uuid.UUID, productCode, productName string, quantity int64, purchasePrice valueobject.Money) (*PurchaseOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}

	now := time.Now()
	return &PurchaseOrderItem{
		ID:            uuid.New(),
		OrderID:       orderID,
		ProductID:     productID,
		ProductCode:   productCode,
		ProductName:   productName,
		Quantity:      quantity,
		PurchasePrice: purchasePrice.Amount(),
		Amount:        ItemAmount(quantity, purchasePrice.Amount()),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SetBatch sets the optional batch number and expiry date for the item
func (i *PurchaseOrderItem) SetBatch(batchNumber string, expiryDate *time.Time) {
	i.BatchNumber = batchNumber
	i.ExpiryDate = expiryDate
	i.UpdatedAt = time.Now()
}

// UpdateQuantity updates the item quantity and recalculates the amount
func (i *PurchaseOrderItem) UpdateQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = ItemAmount(quantity, i.PurchasePrice)
	i.UpdatedAt = time.Now()

	return nil
}

// PurchaseOrder represents a purchase order aggregate root.
// It manages the lifecycle of a supplier order from creation to
// completion; stock is increased only on the completing transition.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	OperatorID   uuid.UUID           `gorm:"type:uuid;not null"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"` // Sum of item amounts
	TaxRate      decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:0"`  // Order-level tax rate (0..1)
	TaxAmount    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"` // TotalAmount * TaxRate
	FinalAmount  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"` // TotalAmount + TaxAmount
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Remark       string              `gorm:"type:text"`
	ApprovedAt   *time.Time
	ApprovedBy   *uuid.UUID `gorm:"type:uuid"`
	DeliveredAt  *time.Time
	DeliveredBy  *uuid.UUID `gorm:"type:uuid"`
	CompletedAt  *time.Time
	CompletedBy  *uuid.UUID `gorm:"type:uuid"`
	CancelledAt  *time.Time
	CancelledBy  *uuid.UUID `gorm:"type:uuid"`
	CancelReason string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in PENDING status
func NewPurchaseOrder(orderNumber string, supplierID, operatorID uuid.UUID, taxRate decimal.Decimal) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if operatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 1")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		SupplierID:        supplierID,
		OperatorID:        operatorID,
		Items:             make([]PurchaseOrderItem, 0),
		TotalAmount:       decimal.Zero,
		TaxRate:           taxRate,
		TaxAmount:         decimal.Zero,
		FinalAmount:       decimal.Zero,
		Status:            PurchaseOrderStatusPending,
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a new item to the order
// Only allowed in PENDING status
func (o *PurchaseOrder) AddItem(productID uuid.UUID, productCode, productName string, quantity int64, purchasePrice valueobject.Money) (*PurchaseOrderItem, error) {
	if o.Status != PurchaseOrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in order, update quantity instead")
		}
	}

	item, err := NewPurchaseOrderItem(o.ID, productID, productCode, productName, quantity, purchasePrice)
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
func (o *PurchaseOrder) UpdateItemQuantity(itemID uuid.UUID, quantity int64) error {
	if o.Status != PurchaseOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items in a non-pending order")
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

	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// RemoveItem removes an item from the order
// Only allowed in PENDING status
func (o *PurchaseOrder) RemoveItem(itemID uuid.UUID) error {
	if o.Status != PurchaseOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a non-pending order")
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

	return shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
}

// SetRemark sets the order remark
func (o *PurchaseOrder) SetRemark(remark string) {
	o.Remark = remark
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Approve transitions the order from PENDING to APPROVED and records
// the acting operator. Requires at least one item in the order.
func (o *PurchaseOrder) Approve(operatorID uuid.UUID) error {
	if err := guardTransition(purchaseOrderTransitions, o.Status, PurchaseOrderStatusApproved); err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot approve order without items")
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusApproved
	o.ApprovedAt = &now
	o.ApprovedBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// MarkDelivered transitions the order from APPROVED to DELIVERED.
// Delivery is an optional intermediate step; completion is allowed
// directly from APPROVED as well.
func (o *PurchaseOrder) MarkDelivered(operatorID uuid.UUID) error {
	if err := guardTransition(purchaseOrderTransitions, o.Status, PurchaseOrderStatusDelivered); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusDelivered
	o.DeliveredAt = &now
	o.DeliveredBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Complete finalizes the order. This is the committing transition: the
// caller must increase stock for every item in the same transaction.
// Completing an already terminal order fails with ErrAlreadyFinalized.
func (o *PurchaseOrder) Complete(operatorID uuid.UUID) error {
	if err := guardTransition(purchaseOrderTransitions, o.Status, PurchaseOrderStatusCompleted); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCompleted
	o.CompletedAt = &now
	o.CompletedBy = &operatorID
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderCompletedEvent(o, operatorID))

	return nil
}

// Cancel cancels the order with a reason and records the acting operator
func (o *PurchaseOrder) Cancel(operatorID uuid.UUID, reason string) error {
	if err := guardTransition(purchaseOrderTransitions, o.Status, PurchaseOrderStatusCancelled); err != nil {
		return err
	}
	if operatorID == uuid.Nil {
		return shared.NewDomainError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelledBy = &operatorID
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderCancelledEvent(o, reason))

	return nil
}

// TransitionTo requests an explicit status transition by target status.
// Committing transitions (COMPLETED) must go through Complete so the
// stock adjustment cannot be skipped.
func (o *PurchaseOrder) TransitionTo(target PurchaseOrderStatus, operatorID uuid.UUID, reason string) error {
	switch target {
	case PurchaseOrderStatusApproved:
		return o.Approve(operatorID)
	case PurchaseOrderStatusDelivered:
		return o.MarkDelivered(operatorID)
	case PurchaseOrderStatusCancelled:
		return o.Cancel(operatorID, reason)
	case PurchaseOrderStatusCompleted:
		return shared.NewDomainError("INVALID_TARGET", "Completion must be requested through the completion operation")
	default:
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown target status %q", target))
	}
}

// recalculateTotals recalculates the order totals
func (o *PurchaseOrder) recalculateTotals() {
	amounts := make([]decimal.Decimal, len(o.Items))
	for idx, item := range o.Items {
		amounts[idx] = item.Amount
	}
	o.TotalAmount = OrderTotal(amounts...)
	o.TaxAmount = TaxAmount(o.TotalAmount, o.TaxRate)
	o.FinalAmount = PurchaseFinalAmount(o.TotalAmount, o.TaxAmount)
}

// TotalQuantity returns the total ordered quantity across all items
func (o *PurchaseOrder) TotalQuantity() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// GetItemByProduct returns an item by product ID
func (o *PurchaseOrder) GetItemByProduct(productID uuid.UUID) *PurchaseOrderItem {
	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			return &o.Items[idx]
		}
	}
	return nil
}

// ItemCount returns the number of items in the order
func (o *PurchaseOrder) ItemCount() int {
	return len(o.Items)
}

// IsCompleted returns true if order is completed
func (o *PurchaseOrder) IsCompleted() bool {
	return o.Status == PurchaseOrderStatusCompleted
}

// IsCancelled returns true if order is cancelled
func (o *PurchaseOrder) IsCancelled() bool {
	return o.Status == PurchaseOrderStatusCancelled
}

// IsTerminal returns true if order is in a terminal state
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// GetTotalAmountMoney returns total amount as Money
func (o *PurchaseOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

// GetFinalAmountMoney returns final amount as Money
func (o *PurchaseOrder) GetFinalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.FinalAmount)
}
