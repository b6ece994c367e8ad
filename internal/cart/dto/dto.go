package dto

import "github.com/shopspring/decimal"

// Summary is the cart totals block. Shipping is zero at or above the free
// shipping threshold, otherwise the flat rate.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}
