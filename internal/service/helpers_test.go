package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"wallboard/internal/models"
	"wallboard/internal/store"

	"github.com/stretchr/testify/assert"
)

// stepClock advances by a fixed step on every reading, so timestamps are
// deterministic and strictly increasing.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{
		t:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		step: time.Second,
	}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

// seqIDs issues id-1, id-2, ... deterministically.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixture struct {
	svc      *Service
	posts    *store.Memory[*models.Post]
	comments *store.Memory[*models.Comment]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	posts := store.NewMemory[*models.Post]()
	comments := store.NewMemory[*models.Comment]()
	return &fixture{
		svc:      New(posts, comments, newStepClock(), &seqIDs{}),
		posts:    posts,
		comments: comments,
	}
}

func (f *fixture) createPost(t *testing.T, caller models.Identity, title string) *models.Post {
	t.Helper()
	post, err := f.svc.CreatePost(context.Background(), CreatePostInput{
		Caller: caller,
		Title:  title,
		Body:   "body of " + title,
	})
	if err != nil {
		t.Fatalf("createPost: %v", err)
	}
	return post
}

func (f *fixture) createComment(t *testing.T, caller models.Identity, postID, content string) *models.Comment {
	t.Helper()
	comment, err := f.svc.CreateComment(context.Background(), CreateCommentInput{
		Caller:  caller,
		PostID:  postID,
		Content: content,
	})
	if err != nil {
		t.Fatalf("createComment: %v", err)
	}
	return comment
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	}
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, models.CodeForbidden, appErr.Code)
	}
}

// storeStub is a function-field stub for store.Store, used to inject
// backend failures.
type storeStub[T any] struct {
	getFn    func(context.Context, string) (T, bool, error)
	insertFn func(context.Context, string, T) error
	removeFn func(context.Context, string) (T, bool, error)
	valuesFn func(context.Context) ([]T, error)
}

func (s *storeStub[T]) Get(ctx context.Context, id string) (T, bool, error) {
	return s.getFn(ctx, id)
}
func (s *storeStub[T]) Insert(ctx context.Context, id string, rec T) error {
	return s.insertFn(ctx, id, rec)
}
func (s *storeStub[T]) Remove(ctx context.Context, id string) (T, bool, error) {
	return s.removeFn(ctx, id)
}
func (s *storeStub[T]) Values(ctx context.Context) ([]T, error) {
	return s.valuesFn(ctx)
}
