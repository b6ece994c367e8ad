package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/admin"
	"github.com/fekuna/omnipos-storefront/internal/admin/dto"
	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNameRequired = errors.New("product name is required")
	ErrInvalidPrice = errors.New("price must be greater than zero")
)

type adminUseCase struct {
	repo     catalog.Repository
	products []model.Product
	nextID   int
	logger   *zap.Logger
}

// NewAdminUseCase loads the current product list and computes the next
// available id.
func NewAdminUseCase(repo catalog.Repository, log *zap.Logger) (admin.UseCase, error) {
	products, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	nextID := 1
	for _, p := range products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	return &adminUseCase{
		repo:     repo,
		products: products,
		nextID:   nextID,
		logger:   log,
	}, nil
}

func validate(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

func ratingOrDefault(rating int) int {
	if rating <= 0 {
		return model.DefaultRating
	}
	if rating > model.MaxRating {
		return model.MaxRating
	}
	return rating
}

func (uc *adminUseCase) Create(input *dto.CreateProductInput) (*model.Product, error) {
	if err := validate(input.Name, input.Price); err != nil {
		return nil, err
	}

	icon := input.Icon
	if icon == "" {
		icon = model.DefaultIcon
	}

	p := model.Product{
		ID:          uc.nextID,
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Price:       input.Price,
		Rating:      ratingOrDefault(input.Rating),
		Badge:       input.Badge,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		Icon:        icon,
	}

	// New products go to the front of the list.
	uc.products = append([]model.Product{p}, uc.products...)
	uc.nextID++

	if err := uc.repo.Save(uc.products); err != nil {
		uc.products = uc.products[1:]
		uc.nextID--
		return nil, fmt.Errorf("save products: %w", err)
	}

	uc.logger.Info("product created", zap.Int("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

func (uc *adminUseCase) Update(id int, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validate(input.Name, input.Price); err != nil {
		return nil, err
	}

	for i := range uc.products {
		if uc.products[i].ID != id {
			continue
		}

		previous := uc.products[i]
		icon := input.Icon
		if icon == "" {
			icon = model.DefaultIcon
		}
		uc.products[i] = model.Product{
			ID:          id,
			Name:        strings.TrimSpace(input.Name),
			Category:    input.Category,
			Price:       input.Price,
			Rating:      ratingOrDefault(input.Rating),
			Badge:       input.Badge,
			Description: input.Description,
			ImagePath:   input.ImagePath,
			Icon:        icon,
		}

		if err := uc.repo.Save(uc.products); err != nil {
			uc.products[i] = previous
			return nil, fmt.Errorf("save products: %w", err)
		}

		updated := uc.products[i]
		uc.logger.Info("product updated", zap.Int("id", id), zap.String("name", updated.Name))
		return &updated, nil
	}
	return nil, model.ErrProductNotFound
}

func (uc *adminUseCase) Delete(id int) error {
	for i := range uc.products {
		if uc.products[i].ID != id {
			continue
		}

		removed := uc.products[i]
		uc.products = append(uc.products[:i], uc.products[i+1:]...)

		if err := uc.repo.Save(uc.products); err != nil {
			// Restore at the end; position is not significant for recovery.
			uc.products = append(uc.products, removed)
			return fmt.Errorf("save products: %w", err)
		}

		uc.logger.Info("product deleted", zap.Int("id", id), zap.String("name", removed.Name))
		return nil
	}
	return model.ErrProductNotFound
}

func (uc *adminUseCase) Get(id int) (*model.Product, error) {
	for _, p := range uc.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (uc *adminUseCase) List() []model.Product {
	out := make([]model.Product, len(uc.products))
	copy(out, uc.products)
	return out
}
