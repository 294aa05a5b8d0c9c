package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementKind_IsValid(t *testing.T) {
	assert.True(t, MovementKindPurchase.IsValid())
	assert.True(t, MovementKindSale.IsValid())
	assert.True(t, MovementKindReturn.IsValid())
	assert.False(t, MovementKind("TRANSFER").IsValid())
	assert.False(t, MovementKind("").IsValid())
}

func TestMovementKind_Direction(t *testing.T) {
	assert.Equal(t, int64(1), MovementKindPurchase.Direction())
	assert.Equal(t, int64(-1), MovementKindSale.Direction())
	assert.Equal(t, int64(1), MovementKindReturn.Direction())
}

func TestNewStockMovement(t *testing.T) {
	productID := uuid.New()
	operatorID := uuid.New()

	movement, err := NewStockMovement(productID, "SKU001", 20, MovementKindPurchase, 50, 70, operatorID, "PO-20240101-0001")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, movement.ID)
	assert.Equal(t, productID, movement.ProductID)
	assert.Equal(t, "SKU001", movement.ProductCode)
	assert.Equal(t, int64(20), movement.Delta)
	assert.Equal(t, MovementKindPurchase, movement.Kind)
	assert.Equal(t, int64(50), movement.QuantityBefore)
	assert.Equal(t, int64(70), movement.QuantityAfter)
	assert.Equal(t, operatorID, movement.OperatorID)
	assert.Equal(t, "PO-20240101-0001", movement.OrderNumber)
	assert.Nil(t, movement.PurchasePrice)
	assert.False(t, movement.OccurredAt.IsZero())
}

func TestNewStockMovement_Validation(t *testing.T) {
	productID := uuid.New()
	operatorID := uuid.New()

	tests := []struct {
		name        string
		productID   uuid.UUID
		productCode string
		delta       int64
		kind        MovementKind
		operatorID  uuid.UUID
		orderNumber string
	}{
		{"nil product id", uuid.Nil, "SKU001", 1, MovementKindPurchase, operatorID, "PO-1"},
		{"empty product code", productID, "", 1, MovementKindPurchase, operatorID, "PO-1"},
		{"zero delta", productID, "SKU001", 0, MovementKindPurchase, operatorID, "PO-1"},
		{"invalid kind", productID, "SKU001", 1, MovementKind("TRANSFER"), operatorID, "PO-1"},
		{"nil operator", productID, "SKU001", 1, MovementKindPurchase, uuid.Nil, "PO-1"},
		{"empty order number", productID, "SKU001", 1, MovementKindPurchase, operatorID, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStockMovement(tt.productID, tt.productCode, tt.delta, tt.kind, 0, 0, tt.operatorID, tt.orderNumber)
			assert.Error(t, err)
		})
	}
}

func TestStockMovement_WithPurchasePrice(t *testing.T) {
	movement, err := NewStockMovement(uuid.New(), "SKU001", 10, MovementKindPurchase, 0, 10, uuid.New(), "PO-1")
	require.NoError(t, err)

	price := decimal.NewFromFloat(0.85)
	movement.WithPurchasePrice(price)

	require.NotNil(t, movement.PurchasePrice)
	assert.True(t, movement.PurchasePrice.Equal(price))
}
