package usecase

import (
	"time"

	"github.com/fekuna/omnipos-storefront/config"
	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/fekuna/omnipos-storefront/internal/cart/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cartUseCase struct {
	catalog cart.ProductResolver
	items   []model.CartItem
	cfg     config.CartConfig
	logger  *zap.Logger
}

func NewCartUseCase(catalog cart.ProductResolver, cfg config.CartConfig, log *zap.Logger) cart.UseCase {
	return &cartUseCase{
		catalog: catalog,
		cfg:     cfg,
		logger:  log,
	}
}

func (uc *cartUseCase) Add(productID int) (*model.Product, error) {
	p, ok := uc.catalog.Resolve(productID)
	if !ok {
		uc.logger.Debug("add ignored, unknown product", zap.Int("product_id", productID))
		return nil, model.ErrProductNotFound
	}

	for i := range uc.items {
		if uc.items[i].ProductID == productID {
			uc.items[i].Quantity++
			return p, nil
		}
	}

	uc.items = append(uc.items, model.CartItem{ProductID: productID, Quantity: 1})
	return p, nil
}

func (uc *cartUseCase) UpdateQuantity(productID, delta int) error {
	for i := range uc.items {
		if uc.items[i].ProductID != productID {
			continue
		}
		if uc.items[i].Quantity+delta <= 0 {
			uc.Remove(productID)
			return nil
		}
		uc.items[i].Quantity += delta
		return nil
	}
	return model.ErrItemNotInCart
}

func (uc *cartUseCase) Remove(productID int) {
	for i := range uc.items {
		if uc.items[i].ProductID == productID {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			return
		}
	}
}

func (uc *cartUseCase) Clear() {
	uc.items = nil
}

// Items returns the lines in insertion order.
func (uc *cartUseCase) Items() []model.CartItem {
	out := make([]model.CartItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// ItemCount is the sum of quantities, not the number of lines.
func (uc *cartUseCase) ItemCount() int {
	count := 0
	for _, item := range uc.items {
		count += item.Quantity
	}
	return count
}

func (uc *cartUseCase) Summary() dto.Summary {
	subtotal := decimal.Zero
	for _, item := range uc.items {
		p, ok := uc.catalog.Resolve(item.ProductID)
		if !ok {
			continue
		}
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := uc.cfg.ShippingRate
	if subtotal.GreaterThanOrEqual(uc.cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return dto.Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

func (uc *cartUseCase) Checkout() (*model.Order, error) {
	if len(uc.items) == 0 {
		return nil, model.ErrCartEmpty
	}

	summary := uc.Summary()
	lines := make([]model.OrderLine, 0, len(uc.items))
	for _, item := range uc.items {
		p, ok := uc.catalog.Resolve(item.ProductID)
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		lines = append(lines, model.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  item.Quantity,
			LineTotal: p.Price.Mul(qty),
		})
	}

	// A cart holding only ids the catalog no longer knows is an empty cart;
	// it must not turn into an order charging shipping for nothing.
	if len(lines) == 0 {
		return nil, model.ErrCartEmpty
	}

	order := &model.Order{
		Reference: uuid.New().String(),
		Lines:     lines,
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Total:     summary.Total,
		PlacedAt:  time.Now(),
	}

	// The ledger is cleared only once the order is built.
	uc.Clear()
	uc.logger.Info("order placed",
		zap.String("reference", order.Reference),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return order, nil
}
