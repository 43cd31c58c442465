package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"demo-api/internal/models"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListUsers())
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	user, err := h.svc.GetUser(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.svc.CreateUser(req)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("User created", "user_id", user.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.svc.UpdateUser(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(id); err != nil {
		writeError(w, err)
		return
	}
	slog.Info("User deleted", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UserOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	orders, err := h.svc.UserOrders(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
