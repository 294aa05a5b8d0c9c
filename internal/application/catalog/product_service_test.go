package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*catalog.Product
	saveErr  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	code = strings.ToUpper(code)
	for _, product := range r.products {
		if product.Code == code {
			copied := *product
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByCodeForUpdate(ctx context.Context, code string) (*catalog.Product, error) {
	return r.FindByCode(ctx, code)
}

func (r *fakeProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var result []catalog.Product
	for _, product := range r.products {
		if category, ok := filter.Filters["category"]; ok && product.Category != category {
			continue
		}
		result = append(result, *product)
	}
	return result, nil
}

func (r *fakeProductRepo) FindBelowAlert(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var result []catalog.Product
	for _, product := range r.products {
		if product.IsBelowAlert() {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	products, err := r.FindAll(ctx, filter)
	return int64(len(products)), err
}

func validCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		Code:          "SKU-100",
		Name:          "Roast Beans 1kg",
		Unit:          "bag",
		PurchasePrice: decimal.NewFromFloat(8.50),
		SalePrice:     decimal.NewFromFloat(14.00),
	}
}

func TestProductService_Create(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	resp, err := service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "SKU-100", resp.Code)
	assert.Equal(t, int64(0), resp.Quantity)
	assert.True(t, decimal.NewFromFloat(14.00).Equal(resp.SalePrice))

	stored, err := repo.FindByCode(context.Background(), "SKU-100")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, stored.ID)
}

func TestProductService_Create_InvalidPrices(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	req := validCreateRequest()
	req.SalePrice = decimal.NewFromFloat(-1)

	_, err := service.Create(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.products)
}

func TestProductService_Create_WithAlertAndCategory(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	req := validCreateRequest()
	req.Category = "coffee"
	req.AlertQuantity = 5

	resp, err := service.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "coffee", resp.Category)
	assert.Equal(t, int64(5), resp.AlertQuantity)
	assert.True(t, resp.BelowAlert)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	service := NewProductService(newFakeProductRepo())

	_, err := service.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_List_FiltersByCategory(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	coffee := validCreateRequest()
	coffee.Category = "coffee"
	_, err := service.Create(context.Background(), coffee)
	require.NoError(t, err)

	tea := validCreateRequest()
	tea.Code = "SKU-200"
	tea.Category = "tea"
	_, err = service.Create(context.Background(), tea)
	require.NoError(t, err)

	products, total, err := service.List(context.Background(), ProductListFilter{Category: "tea"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "SKU-200", products[0].Code)
}

func TestProductService_Update_PartialFields(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	created, err := service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newName := "Roast Beans 500g"
	newSalePrice := decimal.NewFromFloat(9.50)
	updated, err := service.Update(context.Background(), created.ID, UpdateProductRequest{
		Name:      &newName,
		SalePrice: &newSalePrice,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.True(t, newSalePrice.Equal(updated.SalePrice))
	assert.Equal(t, created.Unit, updated.Unit)
	assert.True(t, created.PurchasePrice.Equal(updated.PurchasePrice))
}

func TestProductService_Delete(t *testing.T) {
	repo := newFakeProductRepo()
	service := NewProductService(repo)

	created, err := service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, service.Delete(context.Background(), created.ID), shared.ErrNotFound)
}
