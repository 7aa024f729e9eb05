package seed

import (
	"context"
	"testing"

	"wallboard/internal/models"
	"wallboard/internal/service"
	"wallboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	svc := service.New(
		store.NewMemory[*models.Post](),
		store.NewMemory[*models.Comment](),
		nil, nil,
	)
	ctx := context.Background()

	opts := Options{
		Identities:         4,
		Posts:              10,
		MaxLikesPerPost:    5,
		MaxCommentsPerPost: 3,
	}
	require.NoError(t, Demo(ctx, svc, opts))

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, opts.Posts)

	for _, post := range posts {
		assert.NotEmpty(t, post.Owner)
		assert.LessOrEqual(t, post.Likes, opts.MaxLikesPerPost)
		assert.LessOrEqual(t, len(post.Comments), opts.MaxCommentsPerPost)

		// Every id in the sequence resolves to a stored comment on this post.
		comments, err := svc.ListComments(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, len(post.Comments))
		for _, c := range comments {
			assert.Equal(t, post.ID, c.PostID)
		}
	}
}

func TestDemoRejectsEmptyOptions(t *testing.T) {
	svc := service.New(
		store.NewMemory[*models.Post](),
		store.NewMemory[*models.Comment](),
		nil, nil,
	)

	assert.Error(t, Demo(context.Background(), svc, Options{}))
}
