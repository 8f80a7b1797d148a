package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teejay382/jobtolk-search/api"
	"github.com/teejay382/jobtolk-search/config"
	"github.com/teejay382/jobtolk-search/internal/analytics"
	"github.com/teejay382/jobtolk-search/internal/engine"
	"github.com/teejay382/jobtolk-search/internal/store"
	"github.com/teejay382/jobtolk-search/model"
	"github.com/teejay382/jobtolk-search/services"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "", "Port to run the server on (overrides SEARCH_PORT)")
		demo    = flag.Bool("demo", false, "Seed the in-memory store with sample data")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("JobTolk Search Service - fuzzy search and ranking for jobs and freelancers\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment:\n")
		fmt.Printf("  SEARCH_PORT         Port to listen on (default 8080)\n")
		fmt.Printf("  DATABASE_URL        Postgres URL; omit to use the in-memory store\n")
		fmt.Printf("  REDIS_URL           Redis URL for the coarse-result cache; omit to disable\n")
		fmt.Printf("  CACHE_TTL_SECONDS   Coarse-result cache TTL (default 30)\n")
		fmt.Printf("  RATE_LIMIT_RPS      Per-client request rate limit (default 25, 0 disables)\n")
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("JobTolk Search Service v1.0.0\n")
		return
	}

	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	ctx := context.Background()
	source := buildSource(ctx, cfg, *demo)

	tracker := analytics.NewService()

	var settings config.EngineSettings
	searchEngine, err := engine.New(source, settings, tracker)
	if err != nil {
		log.Fatalf("Failed to create search engine: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, searchEngine, tracker, api.Options{
		RateLimitRPS: cfg.RateLimitRPS,
		RateBurst:    cfg.RateBurst,
	})

	// Start the server
	log.Printf("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildSource wires the coarse-filter source: Postgres when configured,
// the in-memory store otherwise, with an optional Redis cache in front.
func buildSource(ctx context.Context, cfg *config.ServerConfig, demo bool) services.Source {
	var source services.Source

	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresSource(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		log.Printf("Using Postgres coarse-filter source")
		source = pg
	} else {
		mem := store.NewMemorySource()
		if demo {
			seedDemoData(mem)
			log.Printf("Seeded in-memory store with demo data")
		}
		log.Printf("Using in-memory coarse-filter source")
		source = mem
	}

	if cfg.RedisURL != "" {
		cached, err := store.NewCachedSource(ctx, source, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Printf("Coarse-result cache enabled (TTL %s)", cfg.CacheTTL)
		source = cached
	}

	return source
}

func seedDemoData(mem *store.MemorySource) {
	now := time.Now()
	mem.AddJobs(
		model.Job{
			ID: "job-1", Title: "React Developer", Category: "Web Development",
			Description: "Build a marketplace frontend with React and TypeScript.",
			Location:    "Remote", JobType: "contract", BudgetMin: 2000, BudgetMax: 5000,
			RequiredSkills: []string{"React", "TypeScript", "CSS"}, CreatedAt: now,
		},
		model.Job{
			ID: "job-2", Title: "Backend Engineer", Category: "Web Development",
			Description: "Design REST APIs in Go with Postgres and Redis.",
			Location:    "Berlin", JobType: "full-time", BudgetMin: 4000, BudgetMax: 7000,
			RequiredSkills: []string{"Go", "Postgres", "Redis"}, CreatedAt: now,
		},
		model.Job{
			ID: "job-3", Title: "Video Editor", Category: "Media",
			Description: "Edit short portfolio videos for freelancer profiles.",
			Location:    "Remote", JobType: "one-off", BudgetMin: 200, BudgetMax: 800,
			RequiredSkills: []string{"Premiere", "After Effects"}, CreatedAt: now,
		},
	)
	mem.AddProfiles(
		model.FreelancerProfile{
			ID: "fp-1", Name: "Ada Okafor", Username: "ada_codes",
			Bio: "Full-stack developer focused on React and Node.", Company: "Freelance",
			Location: "Lagos", Skills: []string{"React", "Node", "GraphQL"},
			ServiceCategories: []string{"Web Development"}, HourlyRate: 45, CreatedAt: now,
		},
		model.FreelancerProfile{
			ID: "fp-2", Name: "Tomas Novak", Username: "tnovak",
			Bio: "Go backend engineer, APIs and data pipelines.", Company: "Novak Consulting",
			Location: "Prague", Skills: []string{"Go", "Postgres", "Kubernetes"},
			ServiceCategories: []string{"Backend Development"}, HourlyRate: 60, CreatedAt: now,
		},
	)
}
