// Package seed provides helpers to create demo data. These helpers are
// intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"wallboard/internal/models"
	"wallboard/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls how much demo data is generated.
type Options struct {
	Identities         int
	Posts              int
	MaxLikesPerPost    int
	MaxCommentsPerPost int
}

// DefaultOptions returns a small but representative demo data set.
func DefaultOptions() Options {
	return Options{
		Identities:         8,
		Posts:              25,
		MaxLikesPerPost:    12,
		MaxCommentsPerPost: 6,
	}
}

// Demo populates the stores through the coordinator with fake posts,
// comments and likes. Going through the service keeps every seeded record
// subject to the same invariants as real traffic.
func Demo(ctx context.Context, svc *service.Service, opts Options) error {
	if opts.Identities <= 0 || opts.Posts <= 0 {
		return fmt.Errorf("seed options must name at least one identity and one post")
	}

	identities := make([]models.Identity, opts.Identities)
	for i := range identities {
		identities[i] = models.Identity(gofakeit.Username())
	}
	pick := func() models.Identity {
		return identities[rand.Intn(len(identities))]
	}

	for i := 0; i < opts.Posts; i++ {
		post, err := svc.CreatePost(ctx, service.CreatePostInput{
			Caller: pick(),
			Title:  gofakeit.Sentence(5),
			Body:   gofakeit.Paragraph(1, 3, 8, "\n"),
			Image:  fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		})
		if err != nil {
			return fmt.Errorf("seed post %d: %w", i, err)
		}

		for l := rand.Intn(opts.MaxLikesPerPost + 1); l > 0; l-- {
			if _, err := svc.LikePost(ctx, post.ID); err != nil {
				return fmt.Errorf("seed like on %s: %w", post.ID, err)
			}
		}

		for c := rand.Intn(opts.MaxCommentsPerPost + 1); c > 0; c-- {
			if _, err := svc.CreateComment(ctx, service.CreateCommentInput{
				Caller:  pick(),
				PostID:  post.ID,
				Content: gofakeit.Sentence(12),
			}); err != nil {
				return fmt.Errorf("seed comment on %s: %w", post.ID, err)
			}
		}
	}

	return nil
}
