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

func createTestSaleOrder(t *testing.T, method PaymentMethod) *SaleOrder {
	order, err := NewSaleOrder("SA-20260901-0001", "Walk-in", uuid.New(), method)
	require.NoError(t, err)
	return order
}

func addSaleItem(t *testing.T, order *SaleOrder, code string, quantity int64, price, discountRate float64) *SaleOrderItem {
	item, err := order.AddItem(uuid.New(), code, "Product "+code, quantity,
		valueobject.NewMoneyUSDFromFloat(price), decimal.NewFromFloat(discountRate))
	require.NoError(t, err)
	return item
}

func TestNewSaleOrder(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)

	assert.Equal(t, SaleOrderStatusPending, order.Status)
	assert.Equal(t, PaymentMethodCash, order.PaymentMethod)
	assert.Len(t, order.GetDomainEvents(), 1)
}

func TestNewSaleOrder_Validation(t *testing.T) {
	_, err := NewSaleOrder("", "Walk-in", uuid.New(), PaymentMethodCash)
	assert.Error(t, err)

	_, err = NewSaleOrder("SA-1", "Walk-in", uuid.Nil, PaymentMethodCash)
	assert.Error(t, err)

	_, err = NewSaleOrder("SA-1", "Walk-in", uuid.New(), PaymentMethod("CHECK"))
	assert.Error(t, err)
}

func TestSaleOrder_AddItem_DiscountApplied(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	item := addSaleItem(t, order, "SKU001", 2, 10.00, 0.10)

	assert.Equal(t, "10.00", item.OriginalPrice.StringFixed(2))
	assert.Equal(t, "9.00", item.SalePrice.StringFixed(2))
	assert.Equal(t, "18.00", item.Amount.StringFixed(2))
	assert.Equal(t, "18.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, "18.00", order.FinalAmount.StringFixed(2))
}

func TestSaleOrder_AddItem_Validation(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	price := valueobject.NewMoneyUSDFromFloat(10)

	_, err := order.AddItem(uuid.New(), "SKU001", "P", 0, price, decimal.Zero)
	assert.Error(t, err)

	_, err = order.AddItem(uuid.New(), "SKU001", "P", 1, price, decimal.NewFromFloat(1.5))
	assert.Error(t, err)

	_, err = order.AddItem(uuid.New(), "", "P", 1, price, decimal.Zero)
	assert.Error(t, err)
}

func TestSaleOrder_TotalsReconcile(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	addSaleItem(t, order, "SKU001", 3, 3.33, 0)
	addSaleItem(t, order, "SKU002", 2, 7.77, 0.05)

	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(item.Amount)
	}
	assert.True(t, sum.Equal(order.TotalAmount))
	assert.True(t, order.FinalAmount.Equal(order.TotalAmount.Sub(order.DiscountAmount)))
}

func TestSaleOrder_ApplyDiscount(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	addSaleItem(t, order, "SKU001", 5, 10.00, 0)

	require.NoError(t, order.ApplyDiscount(valueobject.NewMoneyUSDFromFloat(4.50)))
	assert.Equal(t, "45.50", order.FinalAmount.StringFixed(2))

	assert.Error(t, order.ApplyDiscount(valueobject.NewMoneyUSDFromFloat(-1)))
	assert.Error(t, order.ApplyDiscount(valueobject.NewMoneyUSDFromFloat(100)))
}

func TestSaleOrder_PayCash_WithChange(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	addSaleItem(t, order, "SKU001", 5, 10.00, 0)
	require.NoError(t, order.ApplyDiscount(valueobject.NewMoneyUSDFromFloat(4.50)))

	// Final 45.50, tendered 50.00, change 4.50
	cashier := uuid.New()
	require.NoError(t, order.Pay(valueobject.NewMoneyUSDFromFloat(50.00), cashier))
	assert.Equal(t, SaleOrderStatusPaid, order.Status)
	assert.Equal(t, "50.00", order.ReceivedAmount.StringFixed(2))
	assert.Equal(t, "4.50", order.ChangeAmount.StringFixed(2))
	require.NotNil(t, order.PaidAt)
	require.NotNil(t, order.PaidBy)
	assert.Equal(t, cashier, *order.PaidBy)
}

func TestSaleOrder_PayCash_Undertendered(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	addSaleItem(t, order, "SKU001", 5, 10.00, 0)

	err := order.Pay(valueobject.NewMoneyUSDFromFloat(49.99), uuid.New())
	assert.Error(t, err)
	assert.Equal(t, SaleOrderStatusPending, order.Status)
}

func TestSaleOrder_PayCard_ExactTenderRequired(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCard)
	addSaleItem(t, order, "SKU001", 5, 10.00, 0)
	require.NoError(t, order.ApplyDiscount(valueobject.NewMoneyUSDFromFloat(4.50)))

	// Card tender of 45.00 against final 45.50 is rejected
	err := order.Pay(valueobject.NewMoneyUSDFromFloat(45.00), uuid.New())
	assert.Error(t, err)
	assert.Equal(t, SaleOrderStatusPending, order.Status)

	require.NoError(t, order.Pay(valueobject.NewMoneyUSDFromFloat(45.50), uuid.New()))
	assert.True(t, order.ChangeAmount.IsZero())
}

func TestSaleOrder_PayWithoutItems(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	assert.Error(t, order.Pay(valueobject.NewMoneyUSDFromFloat(10), uuid.New()))
}

func TestSaleOrder_Lifecycle(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	addSaleItem(t, order, "SKU001", 1, 10.00, 0)

	operator := uuid.New()

	// Cannot complete an unpaid order
	err := order.Complete(operator)
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)

	require.NoError(t, order.Pay(valueobject.NewMoneyUSDFromFloat(10), operator))
	require.NoError(t, order.Complete(operator))
	assert.Equal(t, SaleOrderStatusCompleted, order.Status)
	assert.True(t, order.IsTerminal())
	require.NotNil(t, order.CompletedBy)
	assert.Equal(t, operator, *order.CompletedBy)

	err = order.Complete(operator)
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)
}

func TestSaleOrder_Cancel(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	addSaleItem(t, order, "SKU001", 1, 10.00, 0)

	operator := uuid.New()
	assert.Error(t, order.Cancel(operator, ""))
	assert.Error(t, order.Cancel(uuid.Nil, "customer walked away"))
	require.NoError(t, order.Cancel(operator, "customer walked away"))
	assert.Equal(t, SaleOrderStatusCancelled, order.Status)
	require.NotNil(t, order.CancelledBy)
	assert.Equal(t, operator, *order.CancelledBy)

	err := order.Cancel(operator, "again")
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)
}

func TestSaleOrder_ItemLookups(t *testing.T) {
	order := createTestSaleOrder(t, PaymentMethodCash)
	item := addSaleItem(t, order, "SKU001", 2, 10.00, 0)

	found := order.GetItemByProduct(item.ProductID)
	require.NotNil(t, found)
	assert.Equal(t, item.ID, found.ID)

	assert.NotNil(t, order.GetItemByProductCode("SKU001"))
	assert.Nil(t, order.GetItemByProductCode("SKU999"))
	assert.Equal(t, int64(2), order.TotalQuantity())
}
