// Package bootstrap wires configuration into runtime dependencies: the
// entity stores, the coordinator service, and the shared clients.
package bootstrap

import (
	"fmt"

	"wallboard/internal/cache"
	"wallboard/internal/config"
	"wallboard/internal/database"
	"wallboard/internal/models"
	"wallboard/internal/service"
	"wallboard/internal/store"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Runtime holds the initialized process-wide dependencies.
type Runtime struct {
	Service *service.Service
	DB      *gorm.DB      // nil unless STORE_BACKEND=gorm
	Redis   *redis.Client // nil when redis is unreachable
}

// InitRuntime builds the entity stores selected by STORE_BACKEND and the
// coordinator service on top of them. Redis is always attempted because the
// rate limiter uses it opportunistically.
func InitRuntime(cfg *config.Config) (*Runtime, error) {
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var (
		posts    store.Store[*models.Post]
		comments store.Store[*models.Comment]
		db       *gorm.DB
	)

	switch cfg.StoreBackend {
	case "memory":
		posts = store.NewMemory[*models.Post]()
		comments = store.NewMemory[*models.Comment]()

	case "gorm":
		var err error
		db, err = database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		posts, err = store.NewGorm[*models.Post](db, store.PostsStore)
		if err != nil {
			return nil, err
		}
		comments, err = store.NewGorm[*models.Comment](db, store.CommentsStore)
		if err != nil {
			return nil, err
		}

	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("STORE_BACKEND=redis but redis is unreachable at %s", cfg.RedisURL)
		}
		posts = store.NewRedis[*models.Post](redisClient, store.PostsStore)
		comments = store.NewRedis[*models.Comment](redisClient, store.CommentsStore)

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return &Runtime{
		Service: service.New(posts, comments, nil, nil),
		DB:      db,
		Redis:   redisClient,
	}, nil
}
