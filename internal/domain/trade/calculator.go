package trade

import "github.com/shopspring/decimal"

// Pure amount arithmetic shared by all three order families. None of
// these functions round: totals are summed at full precision and rounded
// only at the persistence/display boundary to avoid cumulative drift.

// ItemAmount computes the line amount for an order item
func ItemAmount(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// OrderTotal sums item line amounts into an order total
func OrderTotal(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}

// TaxAmount computes the order-level tax for a purchase order
func TaxAmount(total, taxRate decimal.Decimal) decimal.Decimal {
	return total.Mul(taxRate)
}

// PurchaseFinalAmount computes the payable amount of a purchase order
func PurchaseFinalAmount(total, tax decimal.Decimal) decimal.Decimal {
	return total.Add(tax)
}

// SaleFinalAmount computes the payable amount of a sale order
func SaleFinalAmount(total, discount decimal.Decimal) decimal.Decimal {
	return total.Sub(discount)
}

// ChangeAmount computes the change due on a cash sale
func ChangeAmount(received, final decimal.Decimal) decimal.Decimal {
	return received.Sub(final)
}

// DiscountedUnitPrice applies a flat per-item discount rate (0..1) to a
// unit price
func DiscountedUnitPrice(originalPrice, discountRate decimal.Decimal) decimal.Decimal {
	return originalPrice.Mul(decimal.NewFromInt(1).Sub(discountRate))
}

// RefundAmount computes the refund for a return order. Returns carry no
// separate discount concept: the refund is the order total.
func RefundAmount(total decimal.Decimal) decimal.Decimal {
	return total
}
