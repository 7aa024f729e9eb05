package server

import (
	"wallboard/internal/middleware"
	"wallboard/internal/models"
	"wallboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postPayload is the caller-supplied part of a post.
type postPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

// GetPosts returns all posts (public)
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.svc.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(posts)
}

// GetPost returns a single post by id (public)
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.svc.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(post)
}

// CreatePost creates a new post owned by the caller (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postPayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.svc.CreatePost(c.UserContext(), service.CreatePostInput{
		Caller: middleware.CallerIdentity(c),
		Title:  req.Title,
		Body:   req.Body,
		Image:  req.Image,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost replaces the mutable fields of a post (owner only)
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req postPayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.svc.UpdatePost(c.UserContext(), service.UpdatePostInput{
		Caller: middleware.CallerIdentity(c),
		PostID: c.Params("id"),
		Title:  req.Title,
		Body:   req.Body,
		Image:  req.Image,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(post)
}

// LikePost increments a post's like counter (protected, no ownership check)
func (s *Server) LikePost(c *fiber.Ctx) error {
	post, err := s.svc.LikePost(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(post)
}

// DeletePost removes a post and cascades to its comments (owner only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	post, err := s.svc.DeletePost(c.UserContext(), service.DeletePostInput{
		Caller: middleware.CallerIdentity(c),
		PostID: c.Params("id"),
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(post)
}
