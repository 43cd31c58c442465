package core

import (
	"strings"
	"time"

	"demo-api/internal/models"
)

// OrderStatuses are the only values an order's status may take. New orders
// always start Pending.
var OrderStatuses = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}

func (s *Service) ListOrders() []models.Order {
	s.st.Lock()
	defer s.st.Unlock()
	return s.st.Orders.All()
}

func (s *Service) GetOrder(id int) (models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()

	o, ok := s.st.Orders.ByID(id)
	if !ok {
		return models.Order{}, NotFoundf("Order %d not found.", id)
	}
	return o, nil
}

// PlaceOrder validates the whole request before touching anything: the user
// must exist, the item list must be non-empty, and every item's product must
// exist with sufficient stock. Only then is the order stored and each
// product's stock decremented. A failing item aborts with no side effects.
//
// Item totals are computed from the product's price at placement time and
// frozen; later price changes do not rewrite them.
func (s *Service) PlaceOrder(req models.CreateOrderRequest) (models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if _, ok := s.st.Users.ByID(req.UserID); !ok {
		return models.Order{}, Invalidf("User not found.")
	}
	if len(req.Items) == 0 {
		return models.Order{}, Invalidf("Order must contain at least one item.")
	}

	for _, item := range req.Items {
		product, ok := s.st.Products.ByID(item.ProductID)
		if !ok {
			return models.Order{}, Invalidf("Product %d not found.", item.ProductID)
		}
		if product.Stock < item.Quantity {
			return models.Order{}, Invalidf("Insufficient stock for product %s.", product.Name)
		}
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, _ := s.st.Products.ByID(item.ProductID)
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Total:     product.Price * float64(item.Quantity),
		})
	}

	order := models.Order{
		ID:        s.st.Orders.AllocateID(),
		UserID:    req.UserID,
		Items:     items,
		CreatedAt: time.Now().UTC(),
		Status:    "Pending",
	}
	s.st.Orders.Insert(order)

	for _, item := range req.Items {
		i := s.st.Products.Index(item.ProductID)
		p, _ := s.st.Products.ByID(item.ProductID)
		p.Stock -= item.Quantity
		s.st.Products.ReplaceAt(i, p)
	}

	return order, nil
}

func (s *Service) UpdateOrderStatus(id int, req models.UpdateOrderStatusRequest) (models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()

	i := s.st.Orders.Index(id)
	if i == -1 {
		return models.Order{}, NotFoundf("Order %d not found.", id)
	}

	valid := false
	for _, status := range OrderStatuses {
		if req.Status == status {
			valid = true
			break
		}
	}
	if !valid {
		return models.Order{}, Invalidf("Invalid status. Valid values: %s", strings.Join(OrderStatuses, ", "))
	}

	o, _ := s.st.Orders.ByID(id)
	o.Status = req.Status
	s.st.Orders.ReplaceAt(i, o)
	return o, nil
}

func (s *Service) DeleteOrder(id int) error {
	s.st.Lock()
	defer s.st.Unlock()

	o, ok := s.st.Orders.ByID(id)
	if !ok {
		return NotFoundf("Order %d not found.", id)
	}
	if o.Status == "Shipped" || o.Status == "Delivered" {
		return Invalidf("Cannot cancel a shipped or delivered order.")
	}
	s.st.Orders.Remove(id)
	return nil
}

// OrderStats aggregates across all orders: total count, revenue summed from
// frozen item totals, and a per-status count containing only statuses that
// actually occur.
func (s *Service) OrderStats() models.OrderStats {
	s.st.Lock()
	defer s.st.Unlock()

	stats := models.OrderStats{ByStatus: map[string]int{}}
	for _, o := range s.st.Orders.All() {
		stats.TotalOrders++
		stats.ByStatus[o.Status]++
		for _, item := range o.Items {
			stats.TotalRevenue += item.Total
		}
	}
	return stats
}
