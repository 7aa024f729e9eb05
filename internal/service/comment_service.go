package service

import (
	"context"

	"wallboard/internal/models"
)

type CreateCommentInput struct {
	Caller  models.Identity
	PostID  string
	Content string
}

type DeleteCommentInput struct {
	Caller    models.Identity
	CommentID string
}

// ListComments resolves the comments of a post in sequence order. Ids that
// no longer resolve are skipped silently: a prior partial failure must not
// make the post unreadable.
func (s *Service) ListComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	post, ok, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", postID)
	}

	comments := make([]*models.Comment, 0, len(post.Comments))
	for _, id := range post.Comments {
		c, ok, err := s.comments.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// CreateComment attaches a new comment to an existing post: the comment is
// inserted and its id appended to the post's sequence. Neither effect is
// reported as success without the other.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok, err := s.posts.Get(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", in.PostID)
	}

	comment := &models.Comment{
		ID:      s.ids.NewID(),
		Content: in.Content,
		Sender:  in.Caller,
		PostID:  in.PostID,
	}
	if err := s.comments.Insert(ctx, comment.ID, comment); err != nil {
		return nil, err
	}

	updated := post.Clone()
	updated.Comments = append(updated.Comments, comment.ID)
	if err := s.posts.Insert(ctx, updated.ID, updated); err != nil {
		// Undo the comment insert so a failed append is not observable as a
		// half-created comment.
		s.comments.Remove(ctx, comment.ID) //nolint:errcheck
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment from its store and detaches its id from
// the owning post. Only the sender may delete. If the owning post is already
// gone the detach step is skipped silently.
func (s *Service) DeleteComment(ctx context.Context, in DeleteCommentInput) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok, err := s.comments.Get(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("comment", in.CommentID)
	}
	if comment.Sender != in.Caller {
		return nil, models.NewForbiddenError("You can only delete your own comments")
	}

	post, ok, err := s.posts.Get(ctx, comment.PostID)
	if err != nil {
		return nil, err
	}
	if ok {
		updated := post.Clone()
		// Ids are unique within the sequence; remove the first occurrence.
		for i, id := range updated.Comments {
			if id == in.CommentID {
				updated.Comments = append(updated.Comments[:i], updated.Comments[i+1:]...)
				break
			}
		}
		if err := s.posts.Insert(ctx, updated.ID, updated); err != nil {
			return nil, err
		}
	}

	removed, _, err := s.comments.Remove(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	return removed, nil
}
