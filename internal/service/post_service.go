package service

import (
	"context"

	"wallboard/internal/models"
	"wallboard/internal/observability"
)

type CreatePostInput struct {
	Caller models.Identity
	Title  string
	Body   string
	Image  string
}

type UpdatePostInput struct {
	Caller models.Identity
	PostID string
	Title  string
	Body   string
	Image  string
}

type DeletePostInput struct {
	Caller models.Identity
	PostID string
}

// ListPosts returns all posts currently in the store.
func (s *Service) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.posts.Values(ctx)
}

// GetPost returns the post with the given id.
func (s *Service) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, ok, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", id)
	}
	return post, nil
}

// CreatePost stores a new post owned by the caller. It succeeds for any
// payload: fields are caller-supplied text and are not interpreted here.
func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:        s.ids.NewID(),
		Title:     in.Title,
		Body:      in.Body,
		Image:     in.Image,
		Owner:     in.Caller,
		Likes:     0,
		CreatedAt: s.clock.Now(),
		Comments:  []string{},
	}
	if err := s.posts.Insert(ctx, post.ID, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost replaces the three mutable text fields of a post and stamps
// UpdatedAt. Only the owner may update; id, owner, likes, comments and
// CreatedAt are untouched. Existence is checked before ownership, and
// nothing is written on failure.
func (s *Service) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok, err := s.posts.Get(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", in.PostID)
	}
	if post.Owner != in.Caller {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	updated := post.Clone()
	updated.Title = in.Title
	updated.Body = in.Body
	updated.Image = in.Image
	now := s.clock.Now()
	updated.UpdatedAt = &now

	if err := s.posts.Insert(ctx, updated.ID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// LikePost increments the like counter by exactly one. Any caller may like
// any post; there is no ownership check.
func (s *Service) LikePost(ctx context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", id)
	}

	liked := post.Clone()
	liked.Likes++
	if err := s.posts.Insert(ctx, liked.ID, liked); err != nil {
		return nil, err
	}
	return liked, nil
}

// DeletePost removes a post and every comment attached to it. The cascade
// scans the whole comment store rather than trusting the post's own comment
// sequence, so a comment orphaned by earlier drift is still cleaned up.
// Returns the pre-deletion snapshot of the post.
func (s *Service) DeletePost(ctx context.Context, in DeletePostInput) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok, err := s.posts.Get(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", in.PostID)
	}
	if post.Owner != in.Caller {
		return nil, models.NewForbiddenError("You can only delete your own posts")
	}

	snapshot := post.Clone()

	// Comments are purged before the post so a failure mid-cascade can leave
	// an orphaned comment at worst, never a dangling post.
	all, err := s.comments.Values(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.PostID != in.PostID {
			continue
		}
		if _, _, err := s.comments.Remove(ctx, c.ID); err != nil {
			return nil, err
		}
		observability.CascadeDeletedComments.Inc()
	}

	if _, _, err := s.posts.Remove(ctx, in.PostID); err != nil {
		return nil, err
	}
	return snapshot, nil
}
