package core

import (
	"strings"
	"time"

	"demo-api/internal/models"
)

// TodoPriorities are the accepted priority values; matching is
// case-insensitive and the supplied casing is stored as-is.
var TodoPriorities = []string{"Low", "Medium", "High"}

// ListTodos filters by completion flag and/or priority (case-insensitive);
// both filters are ANDed when present.
func (s *Service) ListTodos(completed *bool, priority string) []models.Todo {
	s.st.Lock()
	defer s.st.Unlock()

	result := []models.Todo{}
	for _, t := range s.st.Todos.All() {
		if completed != nil && t.IsCompleted != *completed {
			continue
		}
		if strings.TrimSpace(priority) != "" && !strings.EqualFold(t.Priority, priority) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func (s *Service) GetTodo(id int) (models.Todo, error) {
	s.st.Lock()
	defer s.st.Unlock()

	t, ok := s.st.Todos.ByID(id)
	if !ok {
		return models.Todo{}, NotFoundf("Todo %d not found.", id)
	}
	return t, nil
}

func (s *Service) CreateTodo(req models.CreateTodoRequest) (models.Todo, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if strings.TrimSpace(req.Title) == "" {
		return models.Todo{}, Invalidf("Title is required.")
	}

	priority := "Medium"
	if req.Priority != nil {
		priority = *req.Priority
	}
	valid := false
	for _, p := range TodoPriorities {
		if strings.EqualFold(priority, p) {
			valid = true
			break
		}
	}
	if !valid {
		return models.Todo{}, Invalidf("Invalid priority. Valid values: %s", strings.Join(TodoPriorities, ", "))
	}

	todo := models.Todo{
		ID:          s.st.Todos.AllocateID(),
		Title:       req.Title,
		IsCompleted: false,
		Priority:    priority,
		DueDate:     req.DueDate,
	}
	s.st.Todos.Insert(todo)
	return todo, nil
}

func (s *Service) UpdateTodo(id int, req models.UpdateTodoRequest) (models.Todo, error) {
	s.st.Lock()
	defer s.st.Unlock()

	i := s.st.Todos.Index(id)
	if i == -1 {
		return models.Todo{}, NotFoundf("Todo %d not found.", id)
	}

	t, _ := s.st.Todos.ByID(id)
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.IsCompleted != nil {
		t.IsCompleted = *req.IsCompleted
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	s.st.Todos.ReplaceAt(i, t)
	return t, nil
}

func (s *Service) DeleteTodo(id int) error {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.Todos.Remove(id) {
		return NotFoundf("Todo %d not found.", id)
	}
	return nil
}

// CompleteTodo flips isCompleted to true and touches nothing else.
func (s *Service) CompleteTodo(id int) (models.Todo, error) {
	s.st.Lock()
	defer s.st.Unlock()

	i := s.st.Todos.Index(id)
	if i == -1 {
		return models.Todo{}, NotFoundf("Todo %d not found.", id)
	}
	t, _ := s.st.Todos.ByID(id)
	t.IsCompleted = true
	s.st.Todos.ReplaceAt(i, t)
	return t, nil
}

// OverdueTodos returns open todos whose due date is strictly in the past.
// Todos with no due date are never overdue.
func (s *Service) OverdueTodos() []models.Todo {
	s.st.Lock()
	defer s.st.Unlock()

	now := time.Now().UTC()
	overdue := []models.Todo{}
	for _, t := range s.st.Todos.All() {
		if !t.IsCompleted && t.DueDate != nil && t.DueDate.Before(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}
