package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"demo-api/internal/models"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, h.svc.ListProducts(category))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	product, err := h.svc.GetProduct(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.svc.CreateProduct(req)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Product created", "product_id", product.ID, "name", product.Name)
	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", product.ID))
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.svc.UpdateProduct(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(id); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Product deleted", "product_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.SearchProducts(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.StockUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.svc.SetStock(id, req.Stock)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
