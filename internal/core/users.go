package core

import (
	"strings"

	"demo-api/internal/models"
)

func (s *Service) ListUsers() []models.User {
	s.st.Lock()
	defer s.st.Unlock()
	return s.st.Users.All()
}

func (s *Service) GetUser(id int) (models.User, error) {
	s.st.Lock()
	defer s.st.Unlock()

	u, ok := s.st.Users.ByID(id)
	if !ok {
		return models.User{}, NotFoundf("User %d not found.", id)
	}
	return u, nil
}

func (s *Service) CreateUser(req models.CreateUserRequest) (models.User, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if strings.TrimSpace(req.Name) == "" {
		return models.User{}, Invalidf("Name is required.")
	}
	if strings.TrimSpace(req.Email) == "" {
		return models.User{}, Invalidf("Email is required.")
	}
	for _, u := range s.st.Users.All() {
		if u.Email == req.Email {
			return models.User{}, Conflictf("A user with that email already exists.")
		}
	}

	role := "User"
	if req.Role != nil {
		role = *req.Role
	}
	user := models.User{
		ID:    s.st.Users.AllocateID(),
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	s.st.Users.Insert(user)
	return user, nil
}

func (s *Service) UpdateUser(id int, req models.UpdateUserRequest) (models.User, error) {
	s.st.Lock()
	defer s.st.Unlock()

	i := s.st.Users.Index(id)
	if i == -1 {
		return models.User{}, NotFoundf("User %d not found.", id)
	}

	u, _ := s.st.Users.ByID(id)
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	s.st.Users.ReplaceAt(i, u)
	return u, nil
}

func (s *Service) DeleteUser(id int) error {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.Users.Remove(id) {
		return NotFoundf("User %d not found.", id)
	}
	return nil
}

// UserOrders returns all orders placed by the given user. Deleting a user
// does not cascade, so historical orders may still reference them.
func (s *Service) UserOrders(id int) ([]models.Order, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if _, ok := s.st.Users.ByID(id); !ok {
		return nil, NotFoundf("User not found.")
	}
	orders := []models.Order{}
	for _, o := range s.st.Orders.All() {
		if o.UserID == id {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
