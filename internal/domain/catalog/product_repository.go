package catalog

import (
	"context"

	"github.com/retail/backend/internal/domain/shared"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	shared.Repository[Product]

	// FindByCode finds a product by its unique business code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindByCodeForUpdate finds a product by code and locks the row for
	// the remainder of the enclosing transaction. Must only be called
	// from within a transaction scope.
	FindByCodeForUpdate(ctx context.Context, code string) (*Product, error)

	// FindBelowAlert returns products whose on-hand quantity is at or
	// below their alert threshold
	FindBelowAlert(ctx context.Context, filter shared.Filter) ([]Product, error)
}
