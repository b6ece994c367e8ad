package view

import (
	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// Builder derives view models after each mutating call. It holds no state of
// its own; every method re-queries the usecases.
type Builder struct {
	catalog catalog.UseCase
	cart    cart.UseCase
}

func NewBuilder(catalogUC catalog.UseCase, cartUC cart.UseCase) *Builder {
	return &Builder{catalog: catalogUC, cart: cartUC}
}

func productCard(p model.Product) ProductCard {
	return ProductCard{
		ID:       p.ID,
		Name:     p.Name,
		Category: categoryLabel(p.Category),
		Price:    FormatPrice(p.Price),
		Stars:    stars(p.Rating),
		Badge:    p.Badge,
		Image:    p.ImagePath,
		Icon:     p.Icon,
	}
}

func (b *Builder) CatalogPage() CatalogPage {
	page := b.catalog.Page()
	cards := make([]ProductCard, 0, len(page.Products))
	for _, p := range page.Products {
		cards = append(cards, productCard(p))
	}
	return CatalogPage{
		Products:   cards,
		Page:       page.Page,
		PageCount:  page.PageCount,
		TotalItems: page.TotalItems,
		Empty:      page.TotalItems == 0,
	}
}

func (b *Builder) Featured() []ProductCard {
	featured := b.catalog.Featured()
	cards := make([]ProductCard, 0, len(featured))
	for _, p := range featured {
		cards = append(cards, productCard(p))
	}
	return cards
}

func (b *Builder) Cart() CartView {
	items := b.cart.Items()
	summary := b.cart.Summary()

	lines := make([]CartLine, 0, len(items))
	itemCount := 0
	for _, item := range items {
		p, ok := b.catalog.Resolve(item.ProductID)
		if !ok {
			continue
		}
		itemCount += item.Quantity
		lineTotal := p.Price.Mul(decimalFromInt(item.Quantity))
		lines = append(lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  categoryLabel(p.Category),
			UnitPrice: FormatPrice(p.Price),
			Quantity:  item.Quantity,
			LineTotal: FormatPrice(lineTotal),
			Image:     p.ImagePath,
			Icon:      p.Icon,
		})
	}

	shipping := FormatPrice(summary.Shipping)
	if summary.Shipping.IsZero() {
		shipping = "FREE"
	}

	// Counted from the rendered lines so the badge never exceeds what the
	// cart actually shows.
	return CartView{
		Lines:     lines,
		ItemCount: itemCount,
		Subtotal:  FormatPrice(summary.Subtotal),
		Shipping:  shipping,
		Total:     FormatPrice(summary.Total),
		Empty:     len(lines) == 0,
	}
}

// ProductDetail resolves always against the full catalog, not the filtered
// view, so a modal opened from the cart works under any criteria.
func (b *Builder) ProductDetail(id int) (ProductDetail, bool) {
	p, ok := b.catalog.Resolve(id)
	if !ok {
		return ProductDetail{}, false
	}
	return ProductDetail{
		ProductCard: productCard(*p),
		Description: p.Description,
	}, true
}

func (b *Builder) Confirmation(order *model.Order) Confirmation {
	return Confirmation{
		Reference: order.Reference,
		Total:     FormatPrice(order.Total),
		PlacedAt:  order.PlacedAt,
	}
}
