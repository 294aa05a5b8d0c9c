package trade

import (
	"context"
	"fmt"
	"strings"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// In-memory repository fakes. The transactional flows mutate several
// aggregates per call, which is awkward to express with call-recording
// mocks; plain map-backed fakes keep the assertions about resulting
// state readable.

type fakeProductRepo struct {
	products map[string]*catalog.Product // keyed by code
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*catalog.Product)}
	for _, p := range products {
		repo.products[p.Code] = p
	}
	return repo
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	result := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.Code] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for code, p := range r.products {
		if p.ID == id {
			delete(r.products, code)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *fakeProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	if p, ok := r.products[strings.ToUpper(code)]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByCodeForUpdate(ctx context.Context, code string) (*catalog.Product, error) {
	return r.FindByCode(ctx, code)
}

func (r *fakeProductRepo) FindBelowAlert(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	var result []catalog.Product
	for _, p := range r.products {
		if p.IsBelowAlert() {
			result = append(result, *p)
		}
	}
	return result, nil
}

type fakeMovementRepo struct {
	movements []inventory.StockMovement
}

func (r *fakeMovementRepo) Append(_ context.Context, movement *inventory.StockMovement) error {
	r.movements = append(r.movements, *movement)
	return nil
}

func (r *fakeMovementRepo) FindAll(_ context.Context, _ shared.Filter) ([]inventory.StockMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.movements)), nil
}

func (r *fakeMovementRepo) byOrder(orderNumber string) []inventory.StockMovement {
	var result []inventory.StockMovement
	for _, m := range r.movements {
		if m.OrderNumber == orderNumber {
			result = append(result, m)
		}
	}
	return result
}

type fakePurchaseOrderRepo struct {
	orders map[uuid.UUID]*trade.PurchaseOrder
	seq    int
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{orders: make(map[uuid.UUID]*trade.PurchaseOrder)}
}

func (r *fakePurchaseOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.PurchaseOrder, error) {
	result := make([]trade.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (r *fakePurchaseOrderRepo) Save(_ context.Context, order *trade.PurchaseOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakePurchaseOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakePurchaseOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakePurchaseOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*trade.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePurchaseOrderRepo) GenerateOrderNumber(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("PO-20260901-%04d", r.seq), nil
}

type fakeSaleOrderRepo struct {
	orders map[uuid.UUID]*trade.SaleOrder
	seq    int
}

func newFakeSaleOrderRepo() *fakeSaleOrderRepo {
	return &fakeSaleOrderRepo{orders: make(map[uuid.UUID]*trade.SaleOrder)}
}

func (r *fakeSaleOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.SaleOrder, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSaleOrderRepo) FindAll(_ context.Context, _ shared.Filter) ([]trade.SaleOrder, error) {
	result := make([]trade.SaleOrder, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (r *fakeSaleOrderRepo) Save(_ context.Context, order *trade.SaleOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeSaleOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeSaleOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeSaleOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*trade.SaleOrder, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSaleOrderRepo) GenerateOrderNumber(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("SA-20260901-%04d", r.seq), nil
}

type fakeReturnOrderRepo struct {
	orders map[uuid.UUID]*trade.ReturnOrder
	seq    int
}

func newFakeReturnOrderRepo() *fakeReturnOrderRepo {
	return &fakeReturnOrderRepo{orders: make(map[uuid.UUID]*trade.ReturnOrder)}
}

func (r *fakeReturnOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.ReturnOrder, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReturnOrderRepo) FindAll(_ context.Context, filter shared.Filter) ([]trade.ReturnOrder, error) {
	saleOrderNumber, _ := filter.Filters["sale_order_number"].(string)
	result := make([]trade.ReturnOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if saleOrderNumber != "" && o.SaleOrderNumber != saleOrderNumber {
			continue
		}
		result = append(result, *o)
	}
	return result, nil
}

func (r *fakeReturnOrderRepo) Save(_ context.Context, order *trade.ReturnOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeReturnOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeReturnOrderRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeReturnOrderRepo) FindByReturnNumber(_ context.Context, returnNumber string) (*trade.ReturnOrder, error) {
	for _, o := range r.orders {
		if o.ReturnNumber == returnNumber {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeReturnOrderRepo) GenerateReturnNumber(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("RT-20260901-%04d", r.seq), nil
}

var (
	_ catalog.ProductRepository        = (*fakeProductRepo)(nil)
	_ inventory.StockMovementRepository = (*fakeMovementRepo)(nil)
	_ trade.PurchaseOrderRepository    = (*fakePurchaseOrderRepo)(nil)
	_ trade.SaleOrderRepository        = (*fakeSaleOrderRepo)(nil)
	_ trade.ReturnOrderRepository      = (*fakeReturnOrderRepo)(nil)
)
