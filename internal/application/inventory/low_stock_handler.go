package inventory

import (
	"context"

	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LowStockHandler handles StockBelowAlert events and surfaces them to
// operators. The default behavior is a structured log entry; a notifier
// can be attached to fan the alert out to other channels.
type LowStockHandler struct {
	logger   *zap.Logger
	notifier LowStockNotifier
}

// LowStockNotifier is the interface for delivering low stock alerts.
// Implementations can support different channels (in-app, email, etc.)
type LowStockNotifier interface {
	// Notify delivers a low stock alert
	Notify(ctx context.Context, alert LowStockAlert) error
}

// LowStockAlert represents a low stock condition on one product
type LowStockAlert struct {
	ProductCode   string `json:"product_code"`
	ProductName   string `json:"product_name"`
	Quantity      int64  `json:"quantity"`
	AlertQuantity int64  `json:"alert_quantity"`
}

// NewLowStockHandler creates a new handler for stock below alert events
func NewLowStockHandler(logger *zap.Logger) *LowStockHandler {
	return &LowStockHandler{
		logger: logger,
	}
}

// WithNotifier sets the notifier for delivering alerts
func (h *LowStockHandler) WithNotifier(notifier LowStockNotifier) *LowStockHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowAlert}
}

// Handle processes a stock below alert event
func (h *LowStockHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	alertEvent, ok := event.(*inventory.StockBelowAlertEvent)
	if !ok {
		return nil
	}

	h.logger.Warn("product stock below alert threshold",
		zap.String("product_code", alertEvent.ProductCode),
		zap.String("product_name", alertEvent.ProductName),
		zap.Int64("quantity", alertEvent.Quantity),
		zap.Int64("alert_quantity", alertEvent.AlertQuantity),
	)

	if h.notifier == nil {
		return nil
	}

	alert := LowStockAlert{
		ProductCode:   alertEvent.ProductCode,
		ProductName:   alertEvent.ProductName,
		Quantity:      alertEvent.Quantity,
		AlertQuantity: alertEvent.AlertQuantity,
	}
	if err := h.notifier.Notify(ctx, alert); err != nil {
		h.logger.Error("failed to deliver low stock alert",
			zap.String("product_code", alert.ProductCode),
			zap.Error(err),
		)
	}

	return nil
}

var _ shared.EventHandler = (*LowStockHandler)(nil)
