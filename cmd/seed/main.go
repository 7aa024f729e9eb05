// Command seed populates the configured store backend with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"wallboard/internal/bootstrap"
	"wallboard/internal/config"
	"wallboard/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Posts, "posts", opts.Posts, "number of posts to create")
	flag.IntVar(&opts.Identities, "identities", opts.Identities, "number of fake identities")
	flag.IntVar(&opts.MaxLikesPerPost, "max-likes", opts.MaxLikesPerPost, "max likes per post")
	flag.IntVar(&opts.MaxCommentsPerPost, "max-comments", opts.MaxCommentsPerPost, "max comments per post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreBackend == "memory" {
		log.Println("WARNING: seeding the memory backend only lasts for this process")
	}

	rt, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := seed.Demo(context.Background(), rt.Service, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	posts, err := rt.Service.ListPosts(context.Background())
	if err != nil {
		log.Fatalf("Listing seeded posts failed: %v", err)
	}
	log.Printf("Seeded %d posts into the %s backend", len(posts), cfg.StoreBackend)
}
