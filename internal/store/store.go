// Package store provides the data access layer: a durable mapping from
// string ids to fixed-shape records. One instance holds posts, a separate
// instance holds comments; they are never merged.
package store

import "context"

// Store is an ordered, durable mapping from id to record.
//
// Get and Remove report absence through the boolean rather than an error;
// errors are reserved for backend failures. Insert has upsert semantics.
// The order of Values is backend-defined and carries no meaning for callers.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Insert(ctx context.Context, id string, rec T) error
	Remove(ctx context.Context, id string) (T, bool, error)
	Values(ctx context.Context) ([]T, error)
}

// Names of the two entity stores. Backends use them as table names,
// hash keys and metric labels.
const (
	PostsStore    = "posts"
	CommentsStore = "comments"
)
