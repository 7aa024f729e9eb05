package server

import (
	"wallboard/internal/middleware"
	"wallboard/internal/models"
	"wallboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments returns all comments for a post (public)
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.svc.ListComments(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(comments)
}

// CreateComment creates a comment on a post (protected)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.svc.CreateComment(c.UserContext(), service.CreateCommentInput{
		Caller:  middleware.CallerIdentity(c),
		PostID:  c.Params("id"),
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment deletes a comment (sender only)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	comment, err := s.svc.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		Caller:    middleware.CallerIdentity(c),
		CommentID: c.Params("commentId"),
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(comment)
}
