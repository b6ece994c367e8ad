package cart

import (
	"github.com/fekuna/omnipos-storefront/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// ProductResolver is the slice of the catalog the ledger needs: id lookup
// against the immutable product set.
type ProductResolver interface {
	Resolve(id int) (*model.Product, bool)
}

// UseCase is the cart ledger: at most one line per product id, quantities
// always >= 1, prices read from the live catalog at query time. NotFound
// conditions are reported through sentinel errors and never mutate state;
// callers treat them as no-ops since they can arise from stale UI clicks.
type UseCase interface {
	// Add increments the existing line or inserts one with quantity 1 and
	// returns the resolved product for the caller's confirmation message.
	Add(productID int) (*model.Product, error)
	// UpdateQuantity applies a delta; a result <= 0 removes the line.
	UpdateQuantity(productID, delta int) error
	Remove(productID int)
	Clear()

	Items() []model.CartItem
	ItemCount() int
	Summary() dto.Summary

	// Checkout freezes the ledger into an Order and clears it. The ledger is
	// untouched when checkout fails.
	Checkout() (*model.Order, error)
}
