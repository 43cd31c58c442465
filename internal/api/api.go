// Package api is the HTTP layer: it decodes request bodies, calls into
// internal/core, and maps typed errors to status codes.
package api

import (
	"net/http"

	"demo-api/internal/cache"
	"demo-api/internal/core"
)

type Handler struct {
	svc   *core.Service
	cache *cache.Client
}

func NewHandler(svc *core.Service, cache *cache.Client) *Handler {
	return &Handler{
		svc:   svc,
		cache: cache,
	}
}

// Routes returns a mux with every API endpoint registered. Literal segments
// (search, stats, overdue) are registered alongside {id} wildcards; the mux
// prefers the more specific pattern.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/users", h.ListUsers)
	mux.HandleFunc("GET /api/users/{id}", h.GetUser)
	mux.HandleFunc("POST /api/users", h.CreateUser)
	mux.HandleFunc("PUT /api/users/{id}", h.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", h.DeleteUser)
	mux.HandleFunc("GET /api/users/{id}/orders", h.UserOrders)

	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/search", h.SearchProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
	mux.HandleFunc("POST /api/products", h.CreateProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.UpdateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.DeleteProduct)
	mux.HandleFunc("PATCH /api/products/{id}/stock", h.UpdateStock)

	mux.HandleFunc("GET /api/orders", h.ListOrders)
	mux.HandleFunc("GET /api/orders/stats", h.OrderStats)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)
	mux.HandleFunc("POST /api/orders", h.PlaceOrder)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.UpdateOrderStatus)
	mux.HandleFunc("DELETE /api/orders/{id}", h.DeleteOrder)

	mux.HandleFunc("GET /api/todos", h.ListTodos)
	mux.HandleFunc("GET /api/todos/overdue", h.OverdueTodos)
	mux.HandleFunc("GET /api/todos/{id}", h.GetTodo)
	mux.HandleFunc("POST /api/todos", h.CreateTodo)
	mux.HandleFunc("PUT /api/todos/{id}", h.UpdateTodo)
	mux.HandleFunc("DELETE /api/todos/{id}", h.DeleteTodo)
	mux.HandleFunc("PATCH /api/todos/{id}/complete", h.CompleteTodo)

	mux.HandleFunc("GET /api/weather/forecast", h.Forecast)
	mux.HandleFunc("GET /api/weather/forecast/{days}", h.ForecastDays)
	mux.HandleFunc("GET /api/weather/current", h.CurrentWeather)

	return mux
}
