package trade

import "github.com/retail/backend/internal/domain/shared"

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusApproved  PurchaseOrderStatus = "APPROVED"
	PurchaseOrderStatusDelivered PurchaseOrderStatus = "DELIVERED"
	PurchaseOrderStatusCompleted PurchaseOrderStatus = "COMPLETED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// purchaseOrderTransitions encodes the allowed-successor graph for
// purchase orders. Terminal statuses map to an empty successor set.
var purchaseOrderTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	PurchaseOrderStatusPending:   {PurchaseOrderStatusApproved, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusApproved:  {PurchaseOrderStatusDelivered, PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusDelivered: {PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusCompleted: {},
	PurchaseOrderStatusCancelled: {},
}

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	_, ok := purchaseOrderTransitions[s]
	return ok
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	return guardTransition(purchaseOrderTransitions, s, target) == nil
}

// IsTerminal returns true if the status is terminal
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s.IsValid() && len(purchaseOrderTransitions[s]) == 0
}

// SaleOrderStatus represents the status of a sale order
type SaleOrderStatus string

const (
	SaleOrderStatusPending   SaleOrderStatus = "PENDING"
	SaleOrderStatusPaid      SaleOrderStatus = "PAID"
	SaleOrderStatusCompleted SaleOrderStatus = "COMPLETED"
	SaleOrderStatusCancelled SaleOrderStatus = "CANCELLED"
)

// saleOrderTransitions encodes the allowed-successor graph for sale orders
var saleOrderTransitions = map[SaleOrderStatus][]SaleOrderStatus{
	SaleOrderStatusPending:   {SaleOrderStatusPaid, SaleOrderStatusCancelled},
	SaleOrderStatusPaid:      {SaleOrderStatusCompleted, SaleOrderStatusCancelled},
	SaleOrderStatusCompleted: {},
	SaleOrderStatusCancelled: {},
}

// IsValid checks if the status is a valid SaleOrderStatus
func (s SaleOrderStatus) IsValid() bool {
	_, ok := saleOrderTransitions[s]
	return ok
}

// String returns the string representation of SaleOrderStatus
func (s SaleOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SaleOrderStatus) CanTransitionTo(target SaleOrderStatus) bool {
	return guardTransition(saleOrderTransitions, s, target) == nil
}

// IsTerminal returns true if the status is terminal
func (s SaleOrderStatus) IsTerminal() bool {
	return s.IsValid() && len(saleOrderTransitions[s]) == 0
}

// ReturnOrderStatus represents the status of a return order
type ReturnOrderStatus string

const (
	ReturnOrderStatusPending   ReturnOrderStatus = "PENDING"
	ReturnOrderStatusApproved  ReturnOrderStatus = "APPROVED"
	ReturnOrderStatusCompleted ReturnOrderStatus = "COMPLETED"
	ReturnOrderStatusCancelled ReturnOrderStatus = "CANCELLED"
)

// returnOrderTransitions encodes the allowed-successor graph for return orders
var returnOrderTransitions = map[ReturnOrderStatus][]ReturnOrderStatus{
	ReturnOrderStatusPending:   {ReturnOrderStatusApproved, ReturnOrderStatusCancelled},
	ReturnOrderStatusApproved:  {ReturnOrderStatusCompleted, ReturnOrderStatusCancelled},
	ReturnOrderStatusCompleted: {},
	ReturnOrderStatusCancelled: {},
}

// IsValid checks if the status is a valid ReturnOrderStatus
func (s ReturnOrderStatus) IsValid() bool {
	_, ok := returnOrderTransitions[s]
	return ok
}

// String returns the string representation of ReturnOrderStatus
func (s ReturnOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ReturnOrderStatus) CanTransitionTo(target ReturnOrderStatus) bool {
	return guardTransition(returnOrderTransitions, s, target) == nil
}

// IsTerminal returns true if the status is terminal
func (s ReturnOrderStatus) IsTerminal() bool {
	return s.IsValid() && len(returnOrderTransitions[s]) == 0
}

// guardTransition validates a requested transition against a transition
// table. A terminal current status yields ErrAlreadyFinalized; any other
// disallowed target yields ErrInvalidTransition. All three order
// families share this single guard so the allowed-successor graphs stay
// data, not scattered switch statements.
func guardTransition[S ~string](table map[S][]S, from, to S) error {
	successors, ok := table[from]
	if !ok {
		return shared.ErrInvalidTransition
	}
	if len(successors) == 0 {
		return shared.ErrAlreadyFinalized
	}
	for _, next := range successors {
		if next == to {
			return nil
		}
	}
	return shared.ErrInvalidTransition
}

// PaymentMethod represents how a sale order was paid
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodMobile PaymentMethod = "MOBILE"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// RequiresExactTender returns true if the received amount must equal the
// final amount exactly. Only cash payments can produce change.
func (m PaymentMethod) RequiresExactTender() bool {
	return m != PaymentMethodCash
}
