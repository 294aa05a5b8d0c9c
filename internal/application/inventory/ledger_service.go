package inventory

import (
	"context"

	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
)

// LedgerService exposes read access to the stock movement ledger.
// Writes never go through this service: movements are appended only as
// part of the order operations that cause them, inside their
// transaction scope.
type LedgerService struct {
	movementRepo inventory.StockMovementRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(movementRepo inventory.StockMovementRepository) *LedgerService {
	return &LedgerService{
		movementRepo: movementRepo,
	}
}

// History retrieves ledger entries matching the filter, most recent first
func (s *LedgerService) History(ctx context.Context, filter MovementListFilter) ([]StockMovementResponse, int64, error) {
	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	// Build domain filter
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "occurred_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	if filter.ProductCode != "" {
		domainFilter.Filters["product_code"] = filter.ProductCode
	}
	if filter.Kind != "" {
		kind := inventory.MovementKind(filter.Kind)
		if !kind.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_MOVEMENT_KIND", "Invalid movement kind")
		}
		domainFilter.Filters["kind"] = string(kind)
	}
	if filter.OrderNumber != "" {
		domainFilter.Filters["order_number"] = filter.OrderNumber
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	movements, err := s.movementRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.movementRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockMovementResponses(movements), total, nil
}

// HistoryForOrder retrieves all ledger entries produced by one order
func (s *LedgerService) HistoryForOrder(ctx context.Context, orderNumber string) ([]StockMovementResponse, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "occurred_at"
	domainFilter.PageSize = 1000
	domainFilter.Filters["order_number"] = orderNumber

	movements, err := s.movementRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToStockMovementResponses(movements), nil
}
