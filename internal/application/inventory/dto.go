package inventory

import (
	"time"

	"github.com/retail/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockMovementResponse represents a ledger entry in API responses
type StockMovementResponse struct {
	ID             uuid.UUID        `json:"id"`
	ProductID      uuid.UUID        `json:"product_id"`
	ProductCode    string           `json:"product_code"`
	Delta          int64            `json:"delta"`
	Kind           string           `json:"kind"`
	QuantityBefore int64            `json:"quantity_before"`
	QuantityAfter  int64            `json:"quantity_after"`
	OperatorID     uuid.UUID        `json:"operator_id"`
	OrderNumber    string           `json:"order_number"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

// MovementListFilter represents filter options for listing movements
type MovementListFilter struct {
	Page        int        `form:"page"`
	PageSize    int        `form:"page_size"`
	ProductCode string     `form:"product_code"`
	Kind        string     `form:"kind"`
	OrderNumber string     `form:"order_number"`
	StartDate   *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ToStockMovementResponse converts a domain movement to a response DTO
func ToStockMovementResponse(m *inventory.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		ProductCode:    m.ProductCode,
		Delta:          m.Delta,
		Kind:           m.Kind.String(),
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		OperatorID:     m.OperatorID,
		OrderNumber:    m.OrderNumber,
		PurchasePrice:  m.PurchasePrice,
		OccurredAt:     m.OccurredAt,
	}
}

// ToStockMovementResponses converts a slice of domain movements to response DTOs
func ToStockMovementResponses(movements []inventory.StockMovement) []StockMovementResponse {
	responses := make([]StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToStockMovementResponse(&movements[i])
	}
	return responses
}
