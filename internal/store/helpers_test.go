package store

import (
	"context"
	"testing"

	"wallboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the Store contract against a backend. Every
// backend must pass these regardless of how it persists records.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store[*models.Comment]) {
	t.Helper()
	ctx := context.Background()

	t.Run("get on empty store is absent without error", func(t *testing.T) {
		s := newStore(t)

		rec, ok, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, rec)
	})

	t.Run("insert then get round-trips the record", func(t *testing.T) {
		s := newStore(t)
		in := &models.Comment{ID: "c1", Content: "hello", Sender: "alice", PostID: "p1"}

		require.NoError(t, s.Insert(ctx, in.ID, in))

		out, ok, err := s.Get(ctx, in.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, in, out)
	})

	t.Run("insert on an existing id overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, "c1", &models.Comment{ID: "c1", Content: "v1", Sender: "alice", PostID: "p1"}))
		require.NoError(t, s.Insert(ctx, "c1", &models.Comment{ID: "c1", Content: "v2", Sender: "alice", PostID: "p1"}))

		out, ok, err := s.Get(ctx, "c1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "v2", out.Content)

		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("remove returns the record and makes it absent", func(t *testing.T) {
		s := newStore(t)
		in := &models.Comment{ID: "c1", Content: "bye", Sender: "alice", PostID: "p1"}
		require.NoError(t, s.Insert(ctx, in.ID, in))

		out, ok, err := s.Remove(ctx, in.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, in, out)

		_, ok, err = s.Get(ctx, in.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove of a missing id reports absent without error", func(t *testing.T) {
		s := newStore(t)

		_, ok, err := s.Remove(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("values returns every record exactly once", func(t *testing.T) {
		s := newStore(t)
		a := &models.Comment{ID: "c1", Content: "a", Sender: "alice", PostID: "p1"}
		b := &models.Comment{ID: "c2", Content: "b", Sender: "bob", PostID: "p1"}
		c := &models.Comment{ID: "c3", Content: "c", Sender: "carol", PostID: "p2"}
		for _, rec := range []*models.Comment{a, b, c} {
			require.NoError(t, s.Insert(ctx, rec.ID, rec))
		}
		_, _, err := s.Remove(ctx, b.ID)
		require.NoError(t, err)

		all, err := s.Values(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []*models.Comment{a, c}, all)
	})
}
