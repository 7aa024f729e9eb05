package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"wallboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPosts(t *testing.T) {
	app, svc := newTestApp(t)
	seedPost(t, svc, "alice", "one")
	seedPost(t, svc, "bob", "two")

	resp, body := doJSON(t, app, http.MethodGet, "/api/posts/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(body, &posts))
	assert.Len(t, posts, 2)
}

func TestGetPost(t *testing.T) {
	app, svc := newTestApp(t)
	post := seedPost(t, svc, "alice", "readable")

	t.Run("found", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/posts/"+post.ID, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, post.ID, got.ID)
		assert.Equal(t, models.Identity("alice"), got.Owner)
	})

	t.Run("missing", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/posts/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, models.CodeNotFound, errResp.Code)
	})
}

func TestCreatePostHandler(t *testing.T) {
	app, svc := newTestApp(t)

	t.Run("creates for the caller", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/", "alice", fiber.Map{
			"title": "hello",
			"body":  "world",
			"image": "https://example.com/i.png",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, models.Identity("alice"), got.Owner)
		assert.Equal(t, "hello", got.Title)
		assert.Equal(t, 0, got.Likes)

		stored, err := svc.GetPost(t.Context(), got.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", stored.Title)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/", "alice", "not-an-object")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdatePostHandler(t *testing.T) {
	app, svc := newTestApp(t)
	post := seedPost(t, svc, "alice", "draft")

	t.Run("owner updates", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/posts/"+post.ID, "alice", fiber.Map{
			"title": "final",
			"body":  "done",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "final", got.Title)
		assert.NotNil(t, got.UpdatedAt)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/posts/"+post.ID, "mallory", fiber.Map{
			"title": "stolen",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var errResp models.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, models.CodeForbidden, errResp.Code)
	})

	t.Run("missing post gets 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, "/api/posts/nope", "alice", fiber.Map{"title": "x"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLikePostHandler(t *testing.T) {
	app, svc := newTestApp(t)
	post := seedPost(t, svc, "alice", "likeable")

	t.Run("any caller can like", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/"+post.ID+"/like", "bob", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, 1, got.Likes)
	})

	t.Run("missing post gets 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/nope/like", "bob", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeletePostHandler(t *testing.T) {
	app, svc := newTestApp(t)

	t.Run("owner deletes and comments cascade", func(t *testing.T) {
		post := seedPost(t, svc, "alice", "doomed")
		seedComment(t, svc, "bob", post.ID)

		resp, body := doJSON(t, app, http.MethodDelete, "/api/posts/"+post.ID, "alice", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, post.ID, got.ID)
		assert.Len(t, got.Comments, 1)

		resp, _ = doJSON(t, app, http.MethodGet, "/api/posts/"+post.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		post := seedPost(t, svc, "alice", "mine")

		resp, _ := doJSON(t, app, http.MethodDelete, "/api/posts/"+post.ID, "mallory", nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, "/api/posts/"+post.ID, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
