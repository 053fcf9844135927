package repo

import (
	"context"
	"errors"

	"github.com/tarunbommali/ekart/internal/models"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
// All implementations assign the id on Create and keep it immutable
// afterwards; Update and Delete fail with ErrProductNotFound when the
// id is absent.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
}
