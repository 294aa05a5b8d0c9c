package persistence

import (
	"context"
	"fmt"
	"testing"

	apptrade "github.com/retail/backend/internal/application/trade"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/retail/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSQLiteDB opens an in-memory database with the full schema so the
// committing order flows can run against real transactions. The DSN is
// scoped to the test name; a single connection keeps the shared cache
// alive for the test's lifetime.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&inventory.StockMovement{},
		&trade.PurchaseOrder{},
		&trade.PurchaseOrderItem{},
		&trade.SaleOrder{},
		&trade.SaleOrderItem{},
		&trade.ReturnOrder{},
		&trade.ReturnOrderItem{},
	))

	return db
}

func seedStockedProduct(t *testing.T, db *gorm.DB, code string, quantity int64) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(code, "Product "+code, "pcs",
		valueobject.NewMoneyUSDFromFloat(0.80), valueobject.NewMoneyUSDFromFloat(1.50))
	require.NoError(t, err)
	product.Quantity = quantity
	product.ClearDomainEvents()

	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), product))
	return product
}

func storedQuantity(t *testing.T, db *gorm.DB, code string) int64 {
	t.Helper()

	var product catalog.Product
	require.NoError(t, db.Where("code = ?", code).First(&product).Error)
	return product.Quantity
}

func TestSaleOrderService_Create_RollsBackOnInsufficientStock(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	seedStockedProduct(t, db, "SKU001", 50)
	seedStockedProduct(t, db, "SKU002", 5)

	service := apptrade.NewSaleOrderService(NewGormSaleOrderRepository(db), NewGormTransactionScope(db))

	// The first line fits, the second exceeds stock; nothing from the
	// attempt may survive the rollback.
	_, err := service.Create(ctx, apptrade.CreateSaleOrderRequest{
		OperatorID:    uuid.New(),
		PaymentMethod: "CASH",
		Items: []apptrade.CreateSaleOrderItemInput{
			{ProductCode: "SKU001", Quantity: 10},
			{ProductCode: "SKU002", Quantity: 20},
		},
	})
	require.ErrorIs(t, err, shared.ErrInsufficientStock)

	assert.Equal(t, int64(50), storedQuantity(t, db, "SKU001"))
	assert.Equal(t, int64(5), storedQuantity(t, db, "SKU002"))

	var movements int64
	require.NoError(t, db.Model(&inventory.StockMovement{}).Count(&movements).Error)
	assert.Zero(t, movements)

	var orders int64
	require.NoError(t, db.Model(&trade.SaleOrder{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestSaleOrderService_Create_CommitsStockAndLedgerTogether(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	product := seedStockedProduct(t, db, "SKU001", 50)

	service := apptrade.NewSaleOrderService(NewGormSaleOrderRepository(db), NewGormTransactionScope(db))

	resp, err := service.Create(ctx, apptrade.CreateSaleOrderRequest{
		OperatorID:    uuid.New(),
		PaymentMethod: "CASH",
		Items:         []apptrade.CreateSaleOrderItemInput{{ProductCode: "SKU001", Quantity: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)

	assert.Equal(t, int64(40), storedQuantity(t, db, "SKU001"))

	var movements []inventory.StockMovement
	require.NoError(t, db.Find(&movements).Error)
	require.Len(t, movements, 1)
	assert.Equal(t, product.ID, movements[0].ProductID)
	assert.Equal(t, inventory.MovementKindSale, movements[0].Kind)
	assert.Equal(t, int64(-10), movements[0].Delta)
	assert.Equal(t, int64(50), movements[0].QuantityBefore)
	assert.Equal(t, int64(40), movements[0].QuantityAfter)
	assert.Equal(t, resp.OrderNumber, movements[0].OrderNumber)

	var stored trade.SaleOrder
	require.NoError(t, db.Preload("Items").Where("order_number = ?", resp.OrderNumber).First(&stored).Error)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, int64(10), stored.Items[0].Quantity)
}

func TestPurchaseOrderService_Complete_CommitsOnceAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	seedStockedProduct(t, db, "SKU001", 40)

	service := apptrade.NewPurchaseOrderService(
		NewGormPurchaseOrderRepository(db),
		NewGormProductRepository(db),
		NewGormTransactionScope(db),
	)

	resp, err := service.Create(ctx, apptrade.CreatePurchaseOrderRequest{
		SupplierID: uuid.New(),
		OperatorID: uuid.New(),
		Items:      []apptrade.CreatePurchaseOrderItemInput{{ProductCode: "SKU001", Quantity: 20}},
	})
	require.NoError(t, err)

	_, err = service.Approve(ctx, resp.ID, apptrade.OrderActionRequest{OperatorID: uuid.New()})
	require.NoError(t, err)

	completed, err := service.Complete(ctx, resp.ID, apptrade.CompleteOrderRequest{OperatorID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", completed.Status)
	assert.Equal(t, int64(60), storedQuantity(t, db, "SKU001"))

	// Re-completion fails and leaves stock and ledger untouched
	_, err = service.Complete(ctx, resp.ID, apptrade.CompleteOrderRequest{OperatorID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrAlreadyFinalized)

	assert.Equal(t, int64(60), storedQuantity(t, db, "SKU001"))

	var movements int64
	require.NoError(t, db.Model(&inventory.StockMovement{}).Count(&movements).Error)
	assert.Equal(t, int64(1), movements)
}
