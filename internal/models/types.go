package models

import "time"

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"userId"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	Status    string      `json:"status"`
}

type OrderItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type Todo struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Request types. Pointer fields distinguish "absent" from a zero value:
// a nil field in an update request leaves the stored value unchanged.

type CreateUserRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category *string `json:"category"`
}

type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
}

type StockUpdateRequest struct {
	Stock int `json:"stock"`
}

type CreateOrderRequest struct {
	UserID int                      `json:"userId"`
	Items  []CreateOrderItemRequest `json:"items"`
}

type CreateOrderItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderStats struct {
	TotalOrders  int            `json:"totalOrders"`
	TotalRevenue float64        `json:"totalRevenue"`
	ByStatus     map[string]int `json:"byStatus"`
}

type CreateTodoRequest struct {
	Title    string     `json:"title"`
	Priority *string    `json:"priority"`
	DueDate  *time.Time `json:"dueDate"`
}

type UpdateTodoRequest struct {
	Title       *string    `json:"title"`
	IsCompleted *bool      `json:"isCompleted"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type WeatherForecast struct {
	Date         string `json:"date"`
	TemperatureC int    `json:"temperatureC"`
	Summary      string `json:"summary"`
}

type CurrentWeather struct {
	Temperature int       `json:"temperature"`
	Summary     string    `json:"summary"`
	Humidity    int       `json:"humidity"`
	WindSpeed   int       `json:"windSpeed"`
	Timestamp   time.Time `json:"timestamp"`
}
