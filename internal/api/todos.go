package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"demo-api/internal/models"
)

func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	var completed *bool
	if raw := r.URL.Query().Get("completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid completed filter."})
			return
		}
		completed = &v
	}
	priority := r.URL.Query().Get("priority")
	writeJSON(w, http.StatusOK, h.svc.ListTodos(completed, priority))
}

func (h *Handler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	todo, err := h.svc.GetTodo(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	todo, err := h.svc.CreateTodo(req)
	if err != nil {
		writeError(w, err)
		return
	}
	slog.Info("Todo created", "todo_id", todo.ID)
	w.Header().Set("Location", fmt.Sprintf("/api/todos/%d", todo.ID))
	writeJSON(w, http.StatusCreated, todo)
}

func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	todo, err := h.svc.UpdateTodo(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteTodo(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	todo, err := h.svc.CompleteTodo(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) OverdueTodos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.OverdueTodos())
}
