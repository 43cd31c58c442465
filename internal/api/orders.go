package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"demo-api/internal/models"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListOrders())
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	order, err := h.svc.GetOrder(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.svc.PlaceOrder(req)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Order placed", "order_id", order.ID, "user_id", order.UserID, "items", len(order.Items))
	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", order.ID))
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateOrderStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.svc.UpdateOrderStatus(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Order status updated", "order_id", id, "status", order.Status)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(id); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Order cancelled", "order_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) OrderStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.OrderStats())
}
