package dto

import "github.com/fekuna/omnipos-storefront/internal/model"

// Filters is the active catalog view criteria. Search is stored lowercased;
// an empty Category means all categories.
type Filters struct {
	Search   string
	Category string
	Sort     model.SortKey
	Page     int
}

// PageResult is one visible page of the derived catalog.
type PageResult struct {
	Products   []model.Product
	Page       int
	PageCount  int
	PageSize   int
	TotalItems int
}
