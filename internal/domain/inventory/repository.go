package inventory

import (
	"context"

	"github.com/retail/backend/internal/domain/shared"
)

// StockMovementRepository defines the persistence contract for the
// append-only movement ledger. There is deliberately no update or
// delete: movements are immutable once appended.
type StockMovementRepository interface {
	// Append appends a movement record to the ledger
	Append(ctx context.Context, movement *StockMovement) error

	// FindAll returns movements matching the filter, most recent first.
	// Supported filter keys: product_code, kind, start_date, end_date,
	// order_number.
	FindAll(ctx context.Context, filter shared.Filter) ([]StockMovement, error)

	// Count returns the number of movements matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
