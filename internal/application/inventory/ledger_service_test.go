package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMovementRepo struct {
	movements  []inventory.StockMovement
	lastFilter shared.Filter
}

func (r *recordingMovementRepo) Append(_ context.Context, movement *inventory.StockMovement) error {
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *recordingMovementRepo) FindAll(_ context.Context, filter shared.Filter) ([]inventory.StockMovement, error) {
	r.lastFilter = filter
	return r.movements, nil
}

func (r *recordingMovementRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.movements)), nil
}

func seedMovement(t *testing.T, repo *recordingMovementRepo, kind inventory.MovementKind, delta int64, orderNumber string) {
	t.Helper()
	movement, err := inventory.NewStockMovement(
		uuid.New(), "SKU001", delta, kind, 10, 10+delta, uuid.New(), orderNumber)
	require.NoError(t, err)
	require.NoError(t, repo.Append(context.Background(), movement))
}

func TestLedgerService_History(t *testing.T) {
	repo := &recordingMovementRepo{}
	service := NewLedgerService(repo)
	seedMovement(t, repo, inventory.MovementKindPurchase, 20, "PO-1")
	seedMovement(t, repo, inventory.MovementKindSale, -5, "SA-1")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	responses, total, err := service.History(context.Background(), MovementListFilter{
		ProductCode: "SKU001",
		Kind:        "SALE",
		StartDate:   &start,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Len(t, responses, 2)

	// Defaults and filters are passed through to the repository
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 20, repo.lastFilter.PageSize)
	assert.Equal(t, "occurred_at", repo.lastFilter.OrderBy)
	assert.Equal(t, "desc", repo.lastFilter.OrderDir)
	assert.Equal(t, "SKU001", repo.lastFilter.Filters["product_code"])
	assert.Equal(t, "SALE", repo.lastFilter.Filters["kind"])
	assert.Equal(t, start, repo.lastFilter.Filters["start_date"])
}

func TestLedgerService_History_InvalidKind(t *testing.T) {
	service := NewLedgerService(&recordingMovementRepo{})

	_, _, err := service.History(context.Background(), MovementListFilter{Kind: "TRANSFER"})
	assert.Error(t, err)
}

func TestLedgerService_HistoryForOrder(t *testing.T) {
	repo := &recordingMovementRepo{}
	service := NewLedgerService(repo)
	seedMovement(t, repo, inventory.MovementKindPurchase, 20, "PO-1")

	responses, err := service.HistoryForOrder(context.Background(), "PO-1")
	require.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, "PO-1", repo.lastFilter.Filters["order_number"])

	_, err = service.HistoryForOrder(context.Background(), "")
	assert.Error(t, err)
}
