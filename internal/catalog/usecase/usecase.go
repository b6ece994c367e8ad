package usecase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/fekuna/omnipos-storefront/config"
	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/pagination"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type catalogUseCase struct {
	products []model.Product
	filters  dto.Filters
	collator *collate.Collator
	cfg      config.CatalogConfig
	logger   *zap.Logger
}

// NewCatalogUseCase takes ownership of a copy of products; the caller's
// slice is never touched afterwards.
func NewCatalogUseCase(products []model.Product, cfg config.CatalogConfig, log *zap.Logger) catalog.UseCase {
	if cfg.PageSize < 1 {
		cfg.PageSize = 9
	}
	if cfg.FeaturedLimit < 0 {
		cfg.FeaturedLimit = 0
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Warn("unknown catalog locale, using neutral collation", zap.String("locale", cfg.Locale))
		tag = language.Und
	}

	return &catalogUseCase{
		products: slices.Clone(products),
		filters:  dto.Filters{Sort: model.SortIDAsc, Page: 1},
		collator: collate.New(tag),
		cfg:      cfg,
		logger:   log,
	}
}

func (uc *catalogUseCase) SetSearch(query string) {
	uc.filters.Search = strings.ToLower(query)
	uc.filters.Page = 1
}

func (uc *catalogUseCase) SetCategory(category string) {
	uc.filters.Category = category
	uc.filters.Page = 1
}

// SetSort keeps the current page; only search and category changes reset it.
func (uc *catalogUseCase) SetSort(key model.SortKey) {
	uc.filters.Sort = model.ParseSortKey(string(key))
}

func (uc *catalogUseCase) SetPage(page int) {
	uc.filters.Page = pagination.Clamp(page, uc.pageCount())
}

func (uc *catalogUseCase) Criteria() dto.Filters {
	return uc.filters
}

// Derive applies the category filter and the search filter as a conjunction,
// then stable-sorts by the active key. Equal keys keep their prior relative
// order.
func (uc *catalogUseCase) Derive() []model.Product {
	derived := make([]model.Product, 0, len(uc.products))
	for _, p := range uc.products {
		if !uc.matches(p) {
			continue
		}
		derived = append(derived, p)
	}
	uc.sort(derived)
	return derived
}

func (uc *catalogUseCase) matches(p model.Product) bool {
	if uc.filters.Category != "" && p.Category != uc.filters.Category {
		return false
	}
	if q := uc.filters.Search; q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	return true
}

func (uc *catalogUseCase) sort(products []model.Product) {
	switch uc.filters.Sort {
	case model.SortPriceAsc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case model.SortPriceDesc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case model.SortNameAsc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return uc.collator.CompareString(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}
}

// Page re-clamps the current page against the derived list before slicing,
// so a filter change can never leave the view on a page past the end.
func (uc *catalogUseCase) Page() dto.PageResult {
	derived := uc.Derive()
	pageCount := pagination.Count(len(derived), uc.cfg.PageSize)
	uc.filters.Page = pagination.Clamp(uc.filters.Page, pageCount)

	return dto.PageResult{
		Products:   pagination.Slice(derived, uc.filters.Page, uc.cfg.PageSize),
		Page:       uc.filters.Page,
		PageCount:  pageCount,
		PageSize:   uc.cfg.PageSize,
		TotalItems: len(derived),
	}
}

// Featured always draws from the full catalog, independent of the active
// criteria.
func (uc *catalogUseCase) Featured() []model.Product {
	featured := make([]model.Product, 0, uc.cfg.FeaturedLimit)
	for _, p := range uc.products {
		if p.Badge == "" {
			continue
		}
		featured = append(featured, p)
		if uc.cfg.FeaturedLimit > 0 && len(featured) == uc.cfg.FeaturedLimit {
			break
		}
	}
	return featured
}

// Categories returns the distinct non-empty categories in first-seen order.
func (uc *catalogUseCase) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range uc.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

func (uc *catalogUseCase) Resolve(id int) (*model.Product, bool) {
	for _, p := range uc.products {
		if p.ID == id {
			found := p
			return &found, true
		}
	}
	return nil, false
}

func (uc *catalogUseCase) pageCount() int {
	matched := 0
	for _, p := range uc.products {
		if uc.matches(p) {
			matched++
		}
	}
	return pagination.Count(matched, uc.cfg.PageSize)
}
