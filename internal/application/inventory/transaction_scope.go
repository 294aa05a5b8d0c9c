package inventory

import (
	"context"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// stock-affecting operation touches. When a function is executed within
// a transaction scope, all repository operations are part of the same
// database transaction and are committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within
// a transaction. All repositories returned share the same underlying
// database transaction.
//
// Stock-affecting operations must update the product quantity, append
// the ledger movement and persist the order status change through the
// same scope so that all three land or none do. Products read through
// ProductRepo().FindByCodeForUpdate are row-locked until the scope ends.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
	// PurchaseOrderRepo returns the purchase order repository scoped to the current transaction
	PurchaseOrderRepo() trade.PurchaseOrderRepository
	// SaleOrderRepo returns the sale order repository scoped to the current transaction
	SaleOrderRepo() trade.SaleOrderRepository
	// ReturnOrderRepo returns the return order repository scoped to the current transaction
	ReturnOrderRepo() trade.ReturnOrderRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support
// is not required.
type NoOpTransactionScope struct {
	productRepo       catalog.ProductRepository
	movementRepo      inventory.StockMovementRepository
	purchaseOrderRepo trade.PurchaseOrderRepository
	saleOrderRepo     trade.SaleOrderRepository
	returnOrderRepo   trade.ReturnOrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	movementRepo inventory.StockMovementRepository,
	purchaseOrderRepo trade.PurchaseOrderRepository,
	saleOrderRepo trade.SaleOrderRepository,
	returnOrderRepo trade.ReturnOrderRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:       productRepo,
		movementRepo:      movementRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		saleOrderRepo:     saleOrderRepo,
		returnOrderRepo:   returnOrderRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.movementRepo
}

// PurchaseOrderRepo returns the purchase order repository.
func (s *NoOpTransactionScope) PurchaseOrderRepo() trade.PurchaseOrderRepository {
	return s.purchaseOrderRepo
}

// SaleOrderRepo returns the sale order repository.
func (s *NoOpTransactionScope) SaleOrderRepo() trade.SaleOrderRepository {
	return s.saleOrderRepo
}

// ReturnOrderRepo returns the return order repository.
func (s *NoOpTransactionScope) ReturnOrderRepo() trade.ReturnOrderRepository {
	return s.returnOrderRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
