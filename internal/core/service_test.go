package core

import (
	"testing"

	"demo-api/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(store.Seed())
}

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

// requireKind asserts that err is a typed operation error of the given kind.
func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, kind, opErr.Kind)
	assert.NotEmpty(t, opErr.Message)
}
