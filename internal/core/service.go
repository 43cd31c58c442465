// Package core implements the validation, mutation, and query operations
// shared by every resource endpoint. Operations take already-parsed request
// types and return entities or a typed *Error; mapping to HTTP status codes
// is the caller's job.
package core

import "demo-api/internal/store"

// Service runs every operation under the store's mutex, start to finish, so
// reads and writes are linearizable. The multi-step order placement in
// particular must not interleave with other mutations.
type Service struct {
	st *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{st: st}
}
