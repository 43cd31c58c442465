// Package store holds the in-memory entity collections and id counters.
// It only stores and indexes; business rules live in internal/core.
package store

import (
	"sync"
	"time"

	"demo-api/internal/models"
)

// Collection is an ordered slice of entities plus a monotonic id counter.
// Ids are never reused, even after removal. Collection itself is not
// synchronized; callers serialize access through Store's mutex.
type Collection[T any] struct {
	items  []T
	nextID int
	idOf   func(T) int
}

// AllocateID returns the next id and advances the counter.
func (c *Collection[T]) AllocateID() int {
	id := c.nextID
	c.nextID++
	return id
}

// ByID returns the entity with the given id, if present.
func (c *Collection[T]) ByID(id int) (T, bool) {
	for _, v := range c.items {
		if c.idOf(v) == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Index returns the position of the entity with the given id, or -1.
func (c *Collection[T]) Index(id int) int {
	for i, v := range c.items {
		if c.idOf(v) == id {
			return i
		}
	}
	return -1
}

// Insert appends v, preserving insertion order.
func (c *Collection[T]) Insert(v T) {
	c.items = append(c.items, v)
}

// ReplaceAt overwrites the entity at index i.
func (c *Collection[T]) ReplaceAt(i int, v T) {
	c.items[i] = v
}

// Remove deletes the entity with the given id. Returns false if absent.
func (c *Collection[T]) Remove(id int) bool {
	i := c.Index(id)
	if i == -1 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// All returns the entities in insertion order. The slice is a copy; the
// elements are not.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// WeatherSummaries is the fixed table the weather endpoints sample from.
var WeatherSummaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Store is the process-lifetime source of truth for all entities.
// The embedded mutex guards every collection; operations in internal/core
// hold it for their full duration so no caller observes a mid-mutation state.
type Store struct {
	sync.Mutex

	Users    Collection[models.User]
	Products Collection[models.Product]
	Orders   Collection[models.Order]
	Todos    Collection[models.Todo]
}

// New returns an empty store with all id counters starting at 1.
func New() *Store {
	return &Store{
		Users:    Collection[models.User]{nextID: 1, idOf: func(u models.User) int { return u.ID }},
		Products: Collection[models.Product]{nextID: 1, idOf: func(p models.Product) int { return p.ID }},
		Orders:   Collection[models.Order]{nextID: 1, idOf: func(o models.Order) int { return o.ID }},
		Todos:    Collection[models.Todo]{nextID: 1, idOf: func(t models.Todo) int { return t.ID }},
	}
}

// Seed returns a store preloaded with the fixed demo data.
func Seed() *Store {
	s := New()
	now := time.Now().UTC()

	s.Users.items = []models.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "Admin"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: "User"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com", Role: "User"},
	}
	s.Users.nextID = 4

	s.Products.items = []models.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Stock: 50, Category: "Electronics"},
		{ID: 2, Name: "Headphones", Price: 79.99, Stock: 200, Category: "Electronics"},
		{ID: 3, Name: "Desk Chair", Price: 349.99, Stock: 30, Category: "Furniture"},
		{ID: 4, Name: "Notebook", Price: 4.99, Stock: 1000, Category: "Stationery"},
	}
	s.Products.nextID = 5

	s.Orders.items = []models.Order{
		{
			ID:     1,
			UserID: 1,
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 1, Total: 999.99},
				{ProductID: 2, Quantity: 2, Total: 79.99},
			},
			CreatedAt: now.AddDate(0, 0, -3),
			Status:    "Shipped",
		},
		{
			ID:     2,
			UserID: 2,
			Items: []models.OrderItem{
				{ProductID: 3, Quantity: 1, Total: 349.99},
			},
			CreatedAt: now.AddDate(0, 0, -1),
			Status:    "Processing",
		},
	}
	s.Orders.nextID = 3

	due1 := now.AddDate(0, 0, 1)
	due2 := now.Add(4 * time.Hour)
	due3 := now.AddDate(0, 0, -1)
	s.Todos.items = []models.Todo{
		{ID: 1, Title: "Buy groceries", IsCompleted: false, Priority: "Low", DueDate: &due1},
		{ID: 2, Title: "Finish report", IsCompleted: false, Priority: "High", DueDate: &due2},
		{ID: 3, Title: "Call dentist", IsCompleted: true, Priority: "Medium", DueDate: &due3},
	}
	s.Todos.nextID = 4

	return s
}
