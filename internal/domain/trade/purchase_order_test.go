package trade

import (
	"testing"

	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPurchaseOrder(t *testing.T) *PurchaseOrder {
	order, err := NewPurchaseOrder("PO-20260901-0001", uuid.New(), uuid.New(), decimal.NewFromFloat(0.10))
	require.NoError(t, err)
	return order
}

func addPurchaseItem(t *testing.T, order *PurchaseOrder, code string, quantity int64, price float64) *PurchaseOrderItem {
	item, err := order.AddItem(uuid.New(), code, "Product "+code, quantity, valueobject.NewMoneyUSDFromFloat(price))
	require.NoError(t, err)
	return item
}

func TestNewPurchaseOrder(t *testing.T) {
	order := createTestPurchaseOrder(t)

	assert.Equal(t, PurchaseOrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.IsZero())
	assert.Len(t, order.GetDomainEvents(), 1)
}

func TestNewPurchaseOrder_Validation(t *testing.T) {
	supplierID := uuid.New()
	operatorID := uuid.New()

	_, err := NewPurchaseOrder("", supplierID, operatorID, decimal.Zero)
	assert.Error(t, err)

	_, err = NewPurchaseOrder("PO-1", uuid.Nil, operatorID, decimal.Zero)
	assert.Error(t, err)

	_, err = NewPurchaseOrder("PO-1", supplierID, uuid.Nil, decimal.Zero)
	assert.Error(t, err)

	_, err = NewPurchaseOrder("PO-1", supplierID, operatorID, decimal.NewFromFloat(1.5))
	assert.Error(t, err)

	_, err = NewPurchaseOrder("PO-1", supplierID, operatorID, decimal.NewFromFloat(-0.1))
	assert.Error(t, err)
}

func TestPurchaseOrder_AddItem(t *testing.T) {
	order := createTestPurchaseOrder(t)

	addPurchaseItem(t, order, "SKU001", 10, 5.00)
	addPurchaseItem(t, order, "SKU002", 5, 10.00)

	// 10*5 + 5*10 = 100, tax 10%, final 110
	assert.Equal(t, "100.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, "10.00", order.TaxAmount.StringFixed(2))
	assert.Equal(t, "110.00", order.FinalAmount.StringFixed(2))
	assert.Equal(t, 2, order.ItemCount())
}

func TestPurchaseOrder_AddItem_Duplicate(t *testing.T) {
	order := createTestPurchaseOrder(t)
	productID := uuid.New()

	_, err := order.AddItem(productID, "SKU001", "Product", 10, valueobject.NewMoneyUSDFromFloat(5))
	require.NoError(t, err)

	_, err = order.AddItem(productID, "SKU001", "Product", 3, valueobject.NewMoneyUSDFromFloat(5))
	assert.Error(t, err)
}

func TestPurchaseOrder_TotalsReconcile(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 7, 3.33)
	addPurchaseItem(t, order, "SKU002", 11, 1.07)

	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(item.Amount)
	}
	assert.True(t, sum.Equal(order.TotalAmount))
	assert.True(t, order.FinalAmount.Equal(order.TotalAmount.Add(order.TaxAmount)))
}

func TestPurchaseOrder_UpdateItemQuantity(t *testing.T) {
	order := createTestPurchaseOrder(t)
	item := addPurchaseItem(t, order, "SKU001", 10, 5.00)

	require.NoError(t, order.UpdateItemQuantity(item.ID, 20))
	assert.Equal(t, "100.00", order.TotalAmount.StringFixed(2))

	assert.Error(t, order.UpdateItemQuantity(item.ID, 0))
	assert.Error(t, order.UpdateItemQuantity(uuid.New(), 5))
}

func TestPurchaseOrder_RemoveItem(t *testing.T) {
	order := createTestPurchaseOrder(t)
	item := addPurchaseItem(t, order, "SKU001", 10, 5.00)
	addPurchaseItem(t, order, "SKU002", 2, 1.00)

	require.NoError(t, order.RemoveItem(item.ID))
	assert.Equal(t, 1, order.ItemCount())
	assert.Equal(t, "2.00", order.TotalAmount.StringFixed(2))

	assert.Error(t, order.RemoveItem(uuid.New()))
}

func TestPurchaseOrder_Lifecycle(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 10, 5.00)

	approver := uuid.New()
	require.NoError(t, order.Approve(approver))
	assert.Equal(t, PurchaseOrderStatusApproved, order.Status)
	require.NotNil(t, order.ApprovedAt)
	require.NotNil(t, order.ApprovedBy)
	assert.Equal(t, approver, *order.ApprovedBy)

	receiver := uuid.New()
	require.NoError(t, order.MarkDelivered(receiver))
	assert.Equal(t, PurchaseOrderStatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
	require.NotNil(t, order.DeliveredBy)
	assert.Equal(t, receiver, *order.DeliveredBy)

	require.NoError(t, order.Complete(uuid.New()))
	assert.Equal(t, PurchaseOrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.True(t, order.IsTerminal())
}

func TestPurchaseOrder_CompleteWithoutDelivery(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 10, 5.00)

	require.NoError(t, order.Approve(uuid.New()))
	require.NoError(t, order.Complete(uuid.New()))
	assert.True(t, order.IsCompleted())
}

func TestPurchaseOrder_CompleteFromPending(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 10, 5.00)

	err := order.Complete(uuid.New())
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	assert.Equal(t, PurchaseOrderStatusPending, order.Status)
}

func TestPurchaseOrder_CompleteTwice(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 10, 5.00)
	require.NoError(t, order.Approve(uuid.New()))
	require.NoError(t, order.Complete(uuid.New()))

	err := order.Complete(uuid.New())
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)
}

func TestPurchaseOrder_ApproveWithoutItems(t *testing.T) {
	order := createTestPurchaseOrder(t)
	assert.Error(t, order.Approve(uuid.New()))
}

func TestPurchaseOrder_Cancel(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 10, 5.00)

	operator := uuid.New()
	assert.Error(t, order.Cancel(operator, ""), "reason is required")
	assert.Error(t, order.Cancel(uuid.Nil, "supplier out of business"), "operator is required")

	require.NoError(t, order.Cancel(operator, "supplier out of business"))
	assert.True(t, order.IsCancelled())
	require.NotNil(t, order.CancelledAt)
	require.NotNil(t, order.CancelledBy)
	assert.Equal(t, operator, *order.CancelledBy)

	err := order.Cancel(operator, "again")
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)
}

func TestPurchaseOrder_ModifyAfterApprove(t *testing.T) {
	order := createTestPurchaseOrder(t)
	item := addPurchaseItem(t, order, "SKU001", 10, 5.00)
	require.NoError(t, order.Approve(uuid.New()))

	_, err := order.AddItem(uuid.New(), "SKU002", "Another", 1, valueobject.NewMoneyUSDFromFloat(1))
	assert.Error(t, err)
	assert.Error(t, order.UpdateItemQuantity(item.ID, 5))
	assert.Error(t, order.RemoveItem(item.ID))
}

func TestPurchaseOrder_TransitionTo(t *testing.T) {
	order := createTestPurchaseOrder(t)
	addPurchaseItem(t, order, "SKU001", 10, 5.00)

	require.NoError(t, order.TransitionTo(PurchaseOrderStatusApproved, uuid.New(), ""))
	assert.Equal(t, PurchaseOrderStatusApproved, order.Status)

	// Completion must not be reachable through the generic transition request
	err := order.TransitionTo(PurchaseOrderStatusCompleted, uuid.New(), "")
	assert.Error(t, err)
	assert.Equal(t, PurchaseOrderStatusApproved, order.Status)

	err = order.TransitionTo(PurchaseOrderStatus("BOGUS"), uuid.New(), "")
	assert.Error(t, err)
}

func TestPurchaseOrderItem_Batch(t *testing.T) {
	order := createTestPurchaseOrder(t)
	item := addPurchaseItem(t, order, "SKU001", 10, 5.00)

	item.SetBatch("BATCH-42", nil)
	assert.Equal(t, "BATCH-42", item.BatchNumber)
}
