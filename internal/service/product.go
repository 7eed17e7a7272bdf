package service

import (
	"context"
	"errors"

	"github.com/shopstock/shopstock-go/internal/model"
)

var ErrNameRequired = errors.New("name is required")

// ProductStore is the persistence surface the product service depends on.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id int64, name string, quantity int) error
	Delete(ctx context.Context, id int64) error
}

// ProductService handles product inventory business logic.
type ProductService struct {
	store ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.store.List(ctx)
}

// Create adds a product to the inventory. Quantity is stored as given; it is
// not range-checked.
func (s *ProductService) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	product := &model.Product{
		Name:     req.Name,
		Quantity: req.Quantity,
	}

	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update overwrites a product's name and quantity.
func (s *ProductService) Update(ctx context.Context, id int64, req model.ProductRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	return s.store.Update(ctx, id, req.Name, req.Quantity)
}

// Delete removes a product. Deleting an id that is already gone succeeds.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
