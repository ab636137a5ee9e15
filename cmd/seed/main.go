package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/erica-likelion/team3-be/internal/db"
	"github.com/erica-likelion/team3-be/internal/kakao"
	"github.com/erica-likelion/team3-be/internal/restaurant"
	"github.com/erica-likelion/team3-be/internal/seed"
)

// Usage:
//
//	seed restaurants <dump.json>
//	seed reviews <dump.json>
func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if len(os.Args) < 3 {
		log.Fatal("usage: seed restaurants|reviews <file>")
	}
	mode, path := os.Args[1], os.Args[2]

	for _, k := range []string{"DATABASE_URL", "KAKAO_API_KEY"} {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal("❌ logger init failed:", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	seeder := seed.NewSeeder(
		restaurant.NewPostgresRepository(pgDB),
		kakao.NewClient(),
		logger,
	)

	ctx := context.Background()
	switch mode {
	case "restaurants":
		n, err := seeder.SeedRestaurants(ctx, path)
		if err != nil {
			log.Fatalf("❌ restaurant seeding failed after %d rows: %v", n, err)
		}
		logger.Infow("restaurant seeding done", "stored", n)
	case "reviews":
		n, err := seeder.SeedReviews(ctx, path)
		if err != nil {
			log.Fatalf("❌ review seeding failed after %d rows: %v", n, err)
		}
		logger.Infow("review seeding done", "inserted", n)
	default:
		log.Fatalf("unknown mode %q, want restaurants or reviews", mode)
	}
}
