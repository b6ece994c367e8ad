package catalog

import "github.com/fekuna/omnipos-storefront/internal/model"

// Repository persists the product list as a whole document.
type Repository interface {
	// Load returns the current product list. A missing or empty data file
	// is a valid empty catalog, not an error.
	Load() ([]model.Product, error)
	// Save replaces the stored list, backing up the previous version first.
	Save(products []model.Product) error
}
