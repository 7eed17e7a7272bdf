package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopstock/shopstock-go/internal/model"
	"github.com/shopstock/shopstock-go/internal/service"
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

func newProductRouter(t *testing.T) *chi.Mux {
	t.Helper()

	h := NewProductHandler(service.NewProductService(&memProductStore{}))

	r := chi.NewRouter()
	r.Route("/products/api/products", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
	return r
}

func TestProductCreateThenListHasOneEntry(t *testing.T) {
	r := newProductRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/products/api/products", "", model.ProductRequest{
		Name: "Widget", Quantity: 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/products/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestProductCreateWithoutNameIs400(t *testing.T) {
	r := newProductRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/products/api/products", "", model.ProductRequest{Quantity: 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductUpdate(t *testing.T) {
	r := newProductRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/products/api/products", "", model.ProductRequest{
		Name: "Widget", Quantity: 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/products/api/products/1", "", model.ProductRequest{
		Name: "Widget v2", Quantity: 8,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/products/api/products", "", nil)
	var products []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Widget v2", products[0].Name)
	assert.Equal(t, 8, products[0].Quantity)
}

func TestProductDeleteAbsentIs200(t *testing.T) {
	r := newProductRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/products/api/products/99", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductInvalidIDIs400(t *testing.T) {
	r := newProductRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/products/api/products/abc", "", model.ProductRequest{
		Name: "Widget", Quantity: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
