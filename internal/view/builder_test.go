package view_test

import (
	"testing"

	"github.com/fekuna/omnipos-storefront/config"
	cartUCPkg "github.com/fekuna/omnipos-storefront/internal/cart/usecase"
	catUCPkg "github.com/fekuna/omnipos-storefront/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/view"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setup(t *testing.T) (*view.Builder, func(id int)) {
	t.Helper()
	products := []model.Product{
		{ID: 1, Name: "Silk Scarf", Category: "Accessories", Price: price("10"), Rating: 3, Badge: "New"},
		{ID: 2, Name: "Leather Bag", Category: "", Price: price("45"), Rating: 5, Description: "Hand stitched."},
	}
	catalogUC := catUCPkg.NewCatalogUseCase(products, config.CatalogConfig{PageSize: 9, FeaturedLimit: 3, Locale: "fr"}, zap.NewNop())
	cartUC := cartUCPkg.NewCartUseCase(catalogUC, config.CartConfig{
		FreeShippingThreshold: price("50"),
		ShippingRate:          price("5.00"),
	}, zap.NewNop())
	addToCart := func(id int) { _, _ = cartUC.Add(id) }
	return view.NewBuilder(catalogUC, cartUC), addToCart
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "10,00€", view.FormatPrice(price("10")))
	assert.Equal(t, "19,90€", view.FormatPrice(price("19.9")))
	assert.Equal(t, "0,00€", view.FormatPrice(decimal.Zero))
}

func TestCatalogPageCards(t *testing.T) {
	builder, _ := setup(t)

	page := builder.CatalogPage()
	require.Len(t, page.Products, 2)
	assert.False(t, page.Empty)

	scarf := page.Products[0]
	assert.Equal(t, "10,00€", scarf.Price)
	assert.Equal(t, "⭐⭐⭐", scarf.Stars)
	assert.Equal(t, "New", scarf.Badge)

	// Missing category gets the placeholder label.
	assert.Equal(t, "Uncategorized", page.Products[1].Category)
}

func TestCartViewTotals(t *testing.T) {
	builder, addToCart := setup(t)
	addToCart(1)
	addToCart(1)

	cartView := builder.Cart()
	require.Len(t, cartView.Lines, 1)
	assert.Equal(t, 2, cartView.ItemCount)
	assert.Equal(t, "20,00€", cartView.Lines[0].LineTotal)
	assert.Equal(t, "20,00€", cartView.Subtotal)
	assert.Equal(t, "5,00€", cartView.Shipping)
	assert.Equal(t, "25,00€", cartView.Total)
}

func TestCartViewFreeShipping(t *testing.T) {
	builder, addToCart := setup(t)
	addToCart(1)
	addToCart(2)

	cartView := builder.Cart()
	assert.Equal(t, "FREE", cartView.Shipping)
	assert.Equal(t, "55,00€", cartView.Total)
}

func TestEmptyCartView(t *testing.T) {
	builder, _ := setup(t)

	cartView := builder.Cart()
	assert.True(t, cartView.Empty)
	assert.Zero(t, cartView.ItemCount)
	assert.Equal(t, "0,00€", cartView.Subtotal)
}

type staleResolver struct {
	products map[int]model.Product
}

func (r *staleResolver) Resolve(id int) (*model.Product, bool) {
	p, ok := r.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func TestCartViewCountsOnlyRenderedLines(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "Silk Scarf", Category: "Accessories", Price: price("10"), Rating: 3},
	}
	catalogUC := catUCPkg.NewCatalogUseCase(products, config.CatalogConfig{PageSize: 9, FeaturedLimit: 3, Locale: "fr"}, zap.NewNop())

	// The cart was filled against a catalog that still knew product 99.
	resolver := &staleResolver{products: map[int]model.Product{
		1:  products[0],
		99: {ID: 99, Name: "Discontinued", Price: price("7")},
	}}
	cartUC := cartUCPkg.NewCartUseCase(resolver, config.CartConfig{
		FreeShippingThreshold: price("50"),
		ShippingRate:          price("5.00"),
	}, zap.NewNop())
	_, _ = cartUC.Add(1)
	_, _ = cartUC.Add(99)
	_, _ = cartUC.Add(99)

	cartView := view.NewBuilder(catalogUC, cartUC).Cart()
	require.Len(t, cartView.Lines, 1)
	assert.Equal(t, 1, cartView.ItemCount, "badge matches the visible rows")
}

func TestProductDetail(t *testing.T) {
	builder, _ := setup(t)

	detail, ok := builder.ProductDetail(2)
	require.True(t, ok)
	assert.Equal(t, "Leather Bag", detail.Name)
	assert.Equal(t, "Hand stitched.", detail.Description)

	_, ok = builder.ProductDetail(99)
	assert.False(t, ok)
}

func TestConfirmation(t *testing.T) {
	builder, _ := setup(t)

	order := &model.Order{Reference: "ref-1", Total: price("25.00")}
	confirmation := builder.Confirmation(order)
	assert.Equal(t, "ref-1", confirmation.Reference)
	assert.Equal(t, "25,00€", confirmation.Total)
}
