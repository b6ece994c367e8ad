// Package view builds plain renderable structures from the catalog and cart
// usecases. It is the boundary the renderer consumes; nothing here mutates
// state, and nothing in the core depends on it.
package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const uncategorizedLabel = "Uncategorized"

// ProductCard is one tile in the catalog or featured grid.
type ProductCard struct {
	ID       int
	Name     string
	Category string
	Price    string
	Stars    string
	Badge    string
	Image    string
	Icon     string
}

// CatalogPage is the visible slice of the derived catalog plus the
// pagination controls.
type CatalogPage struct {
	Products   []ProductCard
	Page       int
	PageCount  int
	TotalItems int
	Empty      bool
}

// CartLine is one row of the cart view; unit price and line total come from
// the live catalog.
type CartLine struct {
	ProductID int
	Name      string
	Category  string
	UnitPrice string
	Quantity  int
	LineTotal string
	Image     string
	Icon      string
}

// CartView is the cart page plus the totals block.
type CartView struct {
	Lines     []CartLine
	ItemCount int
	Subtotal  string
	Shipping  string
	Total     string
	Empty     bool
}

// ProductDetail backs the product modal.
type ProductDetail struct {
	ProductCard
	Description string
}

// Confirmation backs the order-placed message.
type Confirmation struct {
	Reference string
	Total     string
	PlacedAt  time.Time
}

// FormatPrice renders a decimal amount the way the storefront displays
// money: two decimals, comma separator, euro suffix.
func FormatPrice(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + "€"
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	return strings.Repeat("⭐", rating)
}

func categoryLabel(category string) string {
	if category == "" {
		return uncategorizedLabel
	}
	return category
}
