package model

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortIDAsc     SortKey = "id-asc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
)

// ParseSortKey whitelists the known keys and falls back to id ordering for
// anything else, so an unrecognized value is never an error.
func ParseSortKey(s string) SortKey {
	switch s {
	case string(SortPriceAsc):
		return SortPriceAsc
	case string(SortPriceDesc):
		return SortPriceDesc
	case string(SortNameAsc), "name":
		return SortNameAsc
	default:
		return SortIDAsc
	}
}
