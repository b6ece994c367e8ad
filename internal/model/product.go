package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are loaded once at startup and never
// mutated by the storefront; the admin flow replaces the whole list on save.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      int             `json:"rating"`
	Badge       string          `json:"badge,omitempty"`
	Description string          `json:"description,omitempty"`
	ImagePath   string          `json:"image_path,omitempty"`
	Icon        string          `json:"icon,omitempty"`
}

const (
	DefaultRating = 5
	DefaultIcon   = "🎁"
	MaxRating     = 5
)
