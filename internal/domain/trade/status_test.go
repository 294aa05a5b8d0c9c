package trade

import (
	"testing"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     PurchaseOrderStatus
		to       PurchaseOrderStatus
		canTrans bool
	}{
		// From PENDING
		{PurchaseOrderStatusPending, PurchaseOrderStatusApproved, true},
		{PurchaseOrderStatusPending, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusPending, PurchaseOrderStatusDelivered, false},
		{PurchaseOrderStatusPending, PurchaseOrderStatusCompleted, false},
		// From APPROVED (delivery is optional)
		{PurchaseOrderStatusApproved, PurchaseOrderStatusDelivered, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusCompleted, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusPending, false},
		// From DELIVERED
		{PurchaseOrderStatusDelivered, PurchaseOrderStatusCompleted, true},
		{PurchaseOrderStatusDelivered, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusDelivered, PurchaseOrderStatusApproved, false},
		// Terminal states
		{PurchaseOrderStatusCompleted, PurchaseOrderStatusApproved, false},
		{PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusPending, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSaleOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     SaleOrderStatus
		to       SaleOrderStatus
		canTrans bool
	}{
		{SaleOrderStatusPending, SaleOrderStatusPaid, true},
		{SaleOrderStatusPending, SaleOrderStatusCancelled, true},
		{SaleOrderStatusPending, SaleOrderStatusCompleted, false},
		{SaleOrderStatusPaid, SaleOrderStatusCompleted, true},
		{SaleOrderStatusPaid, SaleOrderStatusCancelled, true},
		{SaleOrderStatusPaid, SaleOrderStatusPending, false},
		{SaleOrderStatusCompleted, SaleOrderStatusCancelled, false},
		{SaleOrderStatusCancelled, SaleOrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReturnOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     ReturnOrderStatus
		to       ReturnOrderStatus
		canTrans bool
	}{
		{ReturnOrderStatusPending, ReturnOrderStatusApproved, true},
		{ReturnOrderStatusPending, ReturnOrderStatusCancelled, true},
		{ReturnOrderStatusPending, ReturnOrderStatusCompleted, false},
		{ReturnOrderStatusApproved, ReturnOrderStatusCompleted, true},
		{ReturnOrderStatusApproved, ReturnOrderStatusCancelled, true},
		{ReturnOrderStatusCompleted, ReturnOrderStatusPending, false},
		{ReturnOrderStatusCancelled, ReturnOrderStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestGuardTransition_Errors(t *testing.T) {
	// Unknown current status
	err := guardTransition(purchaseOrderTransitions, PurchaseOrderStatus("BOGUS"), PurchaseOrderStatusApproved)
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)

	// Terminal status always yields ErrAlreadyFinalized
	err = guardTransition(purchaseOrderTransitions, PurchaseOrderStatusCompleted, PurchaseOrderStatusCompleted)
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)

	err = guardTransition(saleOrderTransitions, SaleOrderStatusCancelled, SaleOrderStatusPaid)
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)

	// Non-successor target
	err = guardTransition(returnOrderTransitions, ReturnOrderStatusPending, ReturnOrderStatusCompleted)
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodMobile.IsValid())
	assert.False(t, PaymentMethod("CHECK").IsValid())

	assert.False(t, PaymentMethodCash.RequiresExactTender())
	assert.True(t, PaymentMethodCard.RequiresExactTender())
	assert.True(t, PaymentMethodMobile.RequiresExactTender())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, PurchaseOrderStatusCompleted.IsTerminal())
	assert.True(t, PurchaseOrderStatusCancelled.IsTerminal())
	assert.False(t, PurchaseOrderStatusPending.IsTerminal())
	assert.False(t, PurchaseOrderStatus("BOGUS").IsTerminal())

	assert.True(t, SaleOrderStatusCompleted.IsTerminal())
	assert.False(t, SaleOrderStatusPaid.IsTerminal())

	assert.True(t, ReturnOrderStatusCancelled.IsTerminal())
	assert.False(t, ReturnOrderStatusApproved.IsTerminal())
}
