package catalog

import (
	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// UseCase is the catalog view state: the immutable product list plus the
// current search/category/sort/page criteria, and the derivations over them.
// All operations run on the UI event goroutine; none of them block.
type UseCase interface {
	SetSearch(query string)
	SetCategory(category string)
	SetSort(key model.SortKey)
	SetPage(page int)

	Criteria() dto.Filters
	Derive() []model.Product
	Page() dto.PageResult
	Featured() []model.Product
	Categories() []string
	Resolve(id int) (*model.Product, bool)
}
