package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem references a catalog product by id. Name and price are resolved
// from the live catalog at query time, never copied in, so the line can not
// go stale if the catalog changes within a session.
type CartItem struct {
	ProductID int
	Quantity  int
}

// OrderLine is a resolved cart line frozen into an order at checkout.
type OrderLine struct {
	ProductID int
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// Order is the result of a successful checkout.
type Order struct {
	Reference string
	Lines     []OrderLine
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
	PlacedAt  time.Time
}
