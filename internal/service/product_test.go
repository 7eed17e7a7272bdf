package service

import (
	"context"
	"testing"

	"github.com/shopstock/shopstock-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memProductStore struct {
	nextID   int64
	products []model.Product
}

func (s *memProductStore) List(ctx context.Context) ([]model.Product, error) {
	return s.products, nil
}

func (s *memProductStore) Create(ctx context.Context, product *model.Product) error {
	s.nextID++
	product.ID = s.nextID
	s.products = append(s.products, *product)
	return nil
}

func (s *memProductStore) Update(ctx context.Context, id int64, name string, quantity int) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = name
			s.products[i].Quantity = quantity
		}
	}
	return nil
}

func (s *memProductStore) Delete(ctx context.Context, id int64) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestProductCreateRequiresName(t *testing.T) {
	svc := NewProductService(&memProductStore{})

	_, err := svc.Create(context.Background(), model.ProductRequest{Quantity: 5})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestProductCreateThenList(t *testing.T) {
	svc := NewProductService(&memProductStore{})
	ctx := context.Background()

	created, err := svc.Create(ctx, model.ProductRequest{Name: "Widget", Quantity: 10})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestProductUpdateRequiresName(t *testing.T) {
	svc := NewProductService(&memProductStore{})

	err := svc.Update(context.Background(), 1, model.ProductRequest{Quantity: 5})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestProductDeleteAbsentSucceeds(t *testing.T) {
	svc := NewProductService(&memProductStore{})

	err := svc.Delete(context.Background(), 42)
	assert.NoError(t, err)
}
