package inventory

import (
	"testing"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLedgerProduct(t *testing.T, initial int64) *catalog.Product {
	product, err := catalog.NewProduct("SKU001", "Sparkling Water", "pcs",
		valueobject.NewMoneyUSDFromFloat(0.80), valueobject.NewMoneyUSDFromFloat(1.50))
	require.NoError(t, err)
	if initial > 0 {
		require.NoError(t, product.AdjustQuantity(initial))
	}
	product.ClearDomainEvents()
	return product
}

func TestLedger_Adjust_Purchase(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 50)
	price := decimal.NewFromFloat(0.80)

	movement, err := ledger.Adjust(product, 20, MovementKindPurchase, uuid.New(), "PO-1", &price)
	require.NoError(t, err)

	assert.Equal(t, int64(70), product.Quantity)
	assert.Equal(t, int64(20), movement.Delta)
	assert.Equal(t, MovementKindPurchase, movement.Kind)
	assert.Equal(t, int64(50), movement.QuantityBefore)
	assert.Equal(t, int64(70), movement.QuantityAfter)
	require.NotNil(t, movement.PurchasePrice)
	assert.True(t, movement.PurchasePrice.Equal(price))
}

func TestLedger_Adjust_Sale(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 50)

	movement, err := ledger.Adjust(product, -10, MovementKindSale, uuid.New(), "SA-1", nil)
	require.NoError(t, err)

	assert.Equal(t, int64(40), product.Quantity)
	assert.Equal(t, int64(-10), movement.Delta)
	assert.Nil(t, movement.PurchasePrice)
}

func TestLedger_Adjust_InsufficientStock(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 5)

	_, err := ledger.Adjust(product, -10, MovementKindSale, uuid.New(), "SA-1", nil)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	assert.Equal(t, int64(5), product.Quantity, "failed adjustment must leave quantity unchanged")
	assert.Empty(t, product.GetDomainEvents())
}

func TestLedger_Adjust_SignMustMatchKind(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 50)
	operator := uuid.New()

	tests := []struct {
		name  string
		delta int64
		kind  MovementKind
	}{
		{"negative purchase", -5, MovementKindPurchase},
		{"positive sale", 5, MovementKindSale},
		{"negative return", -5, MovementKindReturn},
		{"zero delta", 0, MovementKindPurchase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.Adjust(product, tt.delta, tt.kind, operator, "ORD-1", nil)
			assert.Error(t, err)
			assert.Equal(t, int64(50), product.Quantity)
		})
	}
}

func TestLedger_Adjust_InvalidKind(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 50)

	_, err := ledger.Adjust(product, 1, MovementKind("TRANSFER"), uuid.New(), "ORD-1", nil)
	assert.Error(t, err)

	_, err = ledger.Adjust(nil, 1, MovementKindPurchase, uuid.New(), "ORD-1", nil)
	assert.Error(t, err)
}

func TestLedger_Adjust_EmitsEvents(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 20)
	require.NoError(t, product.SetAlertQuantity(15))
	product.ClearDomainEvents()

	_, err := ledger.Adjust(product, -10, MovementKindSale, uuid.New(), "SA-1", nil)
	require.NoError(t, err)

	events := product.GetDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventTypeStockAdjusted, events[0].EventType())
	assert.Equal(t, EventTypeStockBelowAlert, events[1].EventType())

	alert, ok := events[1].(*StockBelowAlertEvent)
	require.True(t, ok)
	assert.Equal(t, int64(10), alert.Quantity)
	assert.Equal(t, int64(15), alert.AlertQuantity)
}

func TestLedger_Adjust_NoAlertOnIncrease(t *testing.T) {
	ledger := NewLedger()
	product := createLedgerProduct(t, 0)
	require.NoError(t, product.SetAlertQuantity(100))
	product.ClearDomainEvents()

	// Increase leaves product below alert but must not emit an alert event
	_, err := ledger.Adjust(product, 5, MovementKindPurchase, uuid.New(), "PO-1", nil)
	require.NoError(t, err)

	events := product.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeStockAdjusted, events[0].EventType())
}
