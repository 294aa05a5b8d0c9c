package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func newTestEvent(eventType string) shared.DomainEvent {
	e := shared.NewBaseDomainEvent(eventType, "Product", uuid.New())
	return &e
}

func TestInMemoryEventBus_PublishToSubscribedHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"inventory.stock.adjusted"}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("inventory.stock.adjusted"))

	require.NoError(t, err)
	require.Len(t, handler.received, 1)
	assert.Equal(t, "inventory.stock.adjusted", handler.received[0].EventType())
}

func TestInMemoryEventBus_IgnoresUnrelatedEvents(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"inventory.stock.below_alert"}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("inventory.stock.adjusted"))

	require.NoError(t, err)
	assert.Empty(t, handler.received)
}

func TestInMemoryEventBus_WildcardHandlerReceivesAll(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(),
		newTestEvent("inventory.stock.adjusted"),
		newTestEvent("trade.sale_order.paid"),
	)

	require.NoError(t, err)
	assert.Len(t, handler.received, 2)
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{types: []string{"inventory.stock.adjusted"}, err: errors.New("boom")}
	healthy := &recordingHandler{types: []string{"inventory.stock.adjusted"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("inventory.stock.adjusted"))

	require.NoError(t, err)
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_RecoversFromHandlerPanic(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := &recordingHandler{types: []string{"inventory.stock.adjusted"}, panics: true}
	healthy := &recordingHandler{types: []string{"inventory.stock.adjusted"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), newTestEvent("inventory.stock.adjusted"))
	})
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"inventory.stock.adjusted"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("inventory.stock.adjusted"))

	require.NoError(t, err)
	assert.Empty(t, handler.received)
}
