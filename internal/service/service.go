// Package service implements the business rules of the wall: the nine public
// operations, the ownership rule, and the referential integrity between the
// post and comment stores.
package service

import (
	"sync"

	"wallboard/internal/models"
	"wallboard/internal/store"
)

// Service coordinates every public operation over the two entity stores.
// The stores are never exposed to callers directly.
//
// A single mutex serializes all mutating operations. Every write path is a
// get-then-insert sequence, so without it two concurrent mutations of the
// same post could lose an update. Read-only operations bypass the mutex;
// the stores themselves are safe for concurrent access.
type Service struct {
	mu       sync.Mutex
	posts    store.Store[*models.Post]
	comments store.Store[*models.Comment]
	clock    Clock
	ids      IDGenerator
}

// New creates a Service over the given stores. Passing a nil clock or id
// generator selects the production defaults (system clock, UUIDs).
func New(
	posts store.Store[*models.Post],
	comments store.Store[*models.Comment],
	clock Clock,
	ids IDGenerator,
) *Service {
	if clock == nil {
		clock = NewSystemClock()
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Service{
		posts:    posts,
		comments: comments,
		clock:    clock,
		ids:      ids,
	}
}
