package core

import (
	"testing"

	"demo-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRoundTrip(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(models.CreateUserRequest{
		Name:  "Dave",
		Email: "dave@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "User", created.Role, "role defaults to User")

	got, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateUserRequest
		kind Kind
	}{
		{
			name: "missing name",
			req:  models.CreateUserRequest{Email: "x@example.com"},
			kind: KindInvalidInput,
		},
		{
			name: "whitespace name",
			req:  models.CreateUserRequest{Name: "   ", Email: "x@example.com"},
			kind: KindInvalidInput,
		},
		{
			name: "missing email",
			req:  models.CreateUserRequest{Name: "Dave"},
			kind: KindInvalidInput,
		},
		{
			name: "duplicate email",
			req:  models.CreateUserRequest{Name: "Dave", Email: "alice@example.com"},
			kind: KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.CreateUser(tt.req)
			requireKind(t, err, tt.kind)
		})
	}
}

func TestCreateUserDuplicateEmailLeavesExistingUntouched(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreateUser(models.CreateUserRequest{Name: "Impostor", Email: "alice@example.com"})
	requireKind(t, err, KindConflict)

	alice, err := svc.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.Name)
	assert.Len(t, svc.ListUsers(), 3)
}

func TestCreateUserExplicitRole(t *testing.T) {
	svc := newTestService()
	u, err := svc.CreateUser(models.CreateUserRequest{
		Name:  "Eve",
		Email: "eve@example.com",
		Role:  strPtr("Admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Role)
}

func TestUpdateUserCoalesces(t *testing.T) {
	svc := newTestService()

	u, err := svc.UpdateUser(2, models.UpdateUserRequest{Name: strPtr("Robert")})
	require.NoError(t, err)
	assert.Equal(t, "Robert", u.Name)
	assert.Equal(t, "bob@example.com", u.Email, "absent field retains existing value")
	assert.Equal(t, "User", u.Role)

	_, err = svc.UpdateUser(99, models.UpdateUserRequest{})
	requireKind(t, err, KindNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.DeleteUser(3))

	_, err := svc.GetUser(3)
	requireKind(t, err, KindNotFound)
	assert.Len(t, svc.ListUsers(), 2)

	requireKind(t, svc.DeleteUser(3), KindNotFound)
}

func TestUserIDsNeverReused(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.DeleteUser(3))

	u, err := svc.CreateUser(models.CreateUserRequest{Name: "Dana", Email: "dana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 4, u.ID, "deleted ids are not reallocated")

	u2, err := svc.CreateUser(models.CreateUserRequest{Name: "Erin", Email: "erin@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 5, u2.ID)
}

func TestUserOrders(t *testing.T) {
	svc := newTestService()

	orders, err := svc.UserOrders(1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 1, orders[0].ID)

	// User 3 exists but has no orders.
	orders, err = svc.UserOrders(3)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = svc.UserOrders(42)
	requireKind(t, err, KindNotFound)
}
