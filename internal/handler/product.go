package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopstock/shopstock-go/internal/model"
	"github.com/shopstock/shopstock-go/internal/service"
)

// ProductHandler handles HTTP requests for product inventory operations.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// HandleList handles GET /products/api/products requests.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing products failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("error fetching products"))
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// HandleCreate handles POST /products/api/products requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.service.Create(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("creating product failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("error creating product"))
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse("product created successfully"))
}

// HandleUpdate handles PUT /products/api/products/{id} requests.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathProductID(w, r)
	if !ok {
		return
	}

	var req model.ProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("updating product failed", "product_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("error updating product"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("product updated successfully"))
}

// HandleDelete handles DELETE /products/api/products/{id} requests. Deleting
// an absent product still succeeds.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathProductID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		slog.Error("deleting product failed", "product_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("error deleting product"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("product deleted successfully"))
}

func pathProductID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid product id"))
		return 0, false
	}
	return id, true
}
