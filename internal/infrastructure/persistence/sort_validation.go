package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"code":           true,
	"name":           true,
	"category":       true,
	"unit":           true,
	"purchase_price": true,
	"sale_price":     true,
	"quantity":       true,
	"alert_quantity": true,
	"expiry_date":    true,
}

// StockMovementSortFields contains allowed sort fields for stock movements
var StockMovementSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"occurred_at":  true,
	"product_code": true,
	"kind":         true,
	"delta":        true,
	"order_number": true,
}

// PurchaseOrderSortFields contains allowed sort fields for purchase orders
var PurchaseOrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"supplier_id":  true,
	"status":       true,
	"total_amount": true,
	"final_amount": true,
	"completed_at": true,
}

// SaleOrderSortFields contains allowed sort fields for sale orders
var SaleOrderSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"order_number":    true,
	"customer":        true,
	"status":          true,
	"total_amount":    true,
	"final_amount":    true,
	"received_amount": true,
	"payment_method":  true,
	"paid_at":         true,
	"completed_at":    true,
}

// ReturnOrderSortFields contains allowed sort fields for return orders
var ReturnOrderSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"return_number":     true,
	"sale_order_number": true,
	"status":            true,
	"total_amount":      true,
	"refund_amount":     true,
	"completed_at":      true,
}
