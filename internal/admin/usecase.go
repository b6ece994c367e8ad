package admin

import (
	"github.com/fekuna/omnipos-storefront/internal/admin/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// UseCase is the product management surface. Mutations validate, apply in
// memory, then persist the whole list; a failed save rolls the in-memory
// change back so the loaded list always matches the stored one.
type UseCase interface {
	Create(input *dto.CreateProductInput) (*model.Product, error)
	Update(id int, input *dto.UpdateProductInput) (*model.Product, error)
	Delete(id int) error
	Get(id int) (*model.Product, error)
	List() []model.Product
}
