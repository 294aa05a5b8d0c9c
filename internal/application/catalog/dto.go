package catalog

import (
	"time"

	"github.com/retail/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code          string          `json:"code" binding:"required,min=1,max=50"`
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Category      string          `json:"category" binding:"max=100"`
	Unit          string          `json:"unit" binding:"required,min=1,max=20"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	AlertQuantity int64           `json:"alert_quantity"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Unit          *string          `json:"unit"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	AlertQuantity *int64           `json:"alert_quantity"`
	SupplierID    *uuid.UUID       `json:"supplier_id"`
	ExpiryDate    *time.Time       `json:"expiry_date"`
}

// ProductListFilter represents filter options for listing products
type ProductListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int64           `json:"quantity"`
	AlertQuantity int64           `json:"alert_quantity"`
	BelowAlert    bool            `json:"below_alert"`
	SupplierID    *uuid.UUID      `json:"supplier_id,omitempty"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Code:          product.Code,
		Name:          product.Name,
		Category:      product.Category,
		Unit:          product.Unit,
		PurchasePrice: product.PurchasePrice,
		SalePrice:     product.SalePrice,
		Quantity:      product.Quantity,
		AlertQuantity: product.AlertQuantity,
		BelowAlert:    product.IsBelowAlert(),
		SupplierID:    product.SupplierID,
		ExpiryDate:    product.ExpiryDate,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products to response DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
