package core

import (
	"testing"
	"time"

	"demo-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRoundTrip(t *testing.T) {
	svc := newTestService()

	due := time.Now().UTC().AddDate(0, 0, 2)
	created, err := svc.CreateTodo(models.CreateTodoRequest{
		Title:   "Water plants",
		DueDate: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.False(t, created.IsCompleted)
	assert.Equal(t, "Medium", created.Priority, "priority defaults to Medium")

	got, err := svc.GetTodo(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateTodoValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateTodo(models.CreateTodoRequest{Title: "  "})
	requireKind(t, err, KindInvalidInput)

	_, err = svc.CreateTodo(models.CreateTodoRequest{Title: "x", Priority: strPtr("Urgent")})
	requireKind(t, err, KindInvalidInput)
}

func TestCreateTodoPriorityCaseInsensitive(t *testing.T) {
	svc := newTestService()

	todo, err := svc.CreateTodo(models.CreateTodoRequest{Title: "x", Priority: strPtr("high")})
	require.NoError(t, err)
	assert.Equal(t, "high", todo.Priority, "supplied casing is stored as-is")
}

func TestListTodosFilters(t *testing.T) {
	svc := newTestService()

	assert.Len(t, svc.ListTodos(nil, ""), 3)

	open := svc.ListTodos(boolPtr(false), "")
	require.Len(t, open, 2)
	assert.Equal(t, "Buy groceries", open[0].Title)

	done := svc.ListTodos(boolPtr(true), "")
	require.Len(t, done, 1)
	assert.Equal(t, "Call dentist", done[0].Title)

	high := svc.ListTodos(nil, "HIGH")
	require.Len(t, high, 1)
	assert.Equal(t, "Finish report", high[0].Title)

	// Both filters AND together.
	assert.Empty(t, svc.ListTodos(boolPtr(true), "High"))
	assert.Len(t, svc.ListTodos(boolPtr(false), "low"), 1)
}

func TestUpdateTodoCoalesces(t *testing.T) {
	svc := newTestService()

	todo, err := svc.UpdateTodo(1, models.UpdateTodoRequest{Priority: strPtr("High")})
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", todo.Title)
	assert.Equal(t, "High", todo.Priority)
	assert.False(t, todo.IsCompleted)
	assert.NotNil(t, todo.DueDate)

	_, err = svc.UpdateTodo(99, models.UpdateTodoRequest{})
	requireKind(t, err, KindNotFound)
}

func TestCompleteTodoTouchesOnlyFlag(t *testing.T) {
	svc := newTestService()

	before, err := svc.GetTodo(2)
	require.NoError(t, err)

	done, err := svc.CompleteTodo(2)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	assert.Equal(t, before.Title, done.Title)
	assert.Equal(t, before.Priority, done.Priority)
	assert.Equal(t, before.DueDate, done.DueDate)

	_, err = svc.CompleteTodo(99)
	requireKind(t, err, KindNotFound)
}

func TestOverdueTodos(t *testing.T) {
	svc := newTestService()

	// Seed: todo 3 is past-due but completed; todos 1 and 2 are due in the
	// future. Nothing is overdue yet.
	assert.Empty(t, svc.OverdueTodos())

	past := time.Now().UTC().Add(-time.Hour)
	_, err := svc.UpdateTodo(1, models.UpdateTodoRequest{DueDate: &past})
	require.NoError(t, err)

	overdue := svc.OverdueTodos()
	require.Len(t, overdue, 1)
	assert.Equal(t, 1, overdue[0].ID)

	// Completing it removes it from the overdue set.
	_, err = svc.CompleteTodo(1)
	require.NoError(t, err)
	assert.Empty(t, svc.OverdueTodos())
}

func TestOverdueIgnoresTodosWithoutDueDate(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateTodo(models.CreateTodoRequest{Title: "Someday"})
	require.NoError(t, err)
	assert.Empty(t, svc.OverdueTodos())
}

func TestDeleteTodo(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.DeleteTodo(3))
	assert.Len(t, svc.ListTodos(nil, ""), 2)
	requireKind(t, svc.DeleteTodo(3), KindNotFound)
}
