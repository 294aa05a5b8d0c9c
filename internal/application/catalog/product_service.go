package catalog

import (
	"context"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles product catalog business operations. Quantity
// is read-only here: stock changes go through order operations and the
// ledger.
type ProductService struct {
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(
		req.Code,
		req.Name,
		req.Unit,
		valueobject.NewMoneyUSD(req.PurchasePrice),
		valueobject.NewMoneyUSD(req.SalePrice),
	)
	if err != nil {
		return nil, err
	}

	if req.Category != "" {
		if err := product.Update(req.Name, req.Category, req.Unit); err != nil {
			return nil, err
		}
	}
	if req.AlertQuantity > 0 {
		if err := product.SetAlertQuantity(req.AlertQuantity); err != nil {
			return nil, err
		}
	}
	product.SetSupplier(req.SupplierID)
	product.SetExpiryDate(req.ExpiryDate)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, product.GetDomainEvents()...)
		product.ClearDomainEvents()
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by its unique business code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := buildProductFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListBelowAlert retrieves products at or below their alert threshold
func (s *ProductService) ListBelowAlert(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindBelowAlert(ctx, buildProductFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product's basic information, prices and settings
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Category != nil || req.Unit != nil {
		name := product.Name
		category := product.Category
		unit := product.Unit
		if req.Name != nil {
			name = *req.Name
		}
		if req.Category != nil {
			category = *req.Category
		}
		if req.Unit != nil {
			unit = *req.Unit
		}
		if err := product.Update(name, category, unit); err != nil {
			return nil, err
		}
	}

	if req.PurchasePrice != nil || req.SalePrice != nil {
		purchasePrice := product.GetPurchasePriceMoney()
		salePrice := product.GetSalePriceMoney()
		if req.PurchasePrice != nil {
			purchasePrice = valueobject.NewMoneyUSD(*req.PurchasePrice)
		}
		if req.SalePrice != nil {
			salePrice = valueobject.NewMoneyUSD(*req.SalePrice)
		}
		if err := product.SetPrices(purchasePrice, salePrice); err != nil {
			return nil, err
		}
	}

	if req.AlertQuantity != nil {
		if err := product.SetAlertQuantity(*req.AlertQuantity); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil {
		product.SetSupplier(req.SupplierID)
	}
	if req.ExpiryDate != nil {
		product.SetExpiryDate(req.ExpiryDate)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

func buildProductFilter(filter ProductListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	return domainFilter
}
