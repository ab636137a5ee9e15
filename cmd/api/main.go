package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/erica-likelion/team3-be/internal/ai"
	"github.com/erica-likelion/team3-be/internal/analysis"
	"github.com/erica-likelion/team3-be/internal/community"
	"github.com/erica-likelion/team3-be/internal/db"
	"github.com/erica-likelion/team3-be/internal/partnership"
	"github.com/erica-likelion/team3-be/internal/restaurant"
	"github.com/erica-likelion/team3-be/internal/router"
	"github.com/erica-likelion/team3-be/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"OPENAI_API_KEY",
		"JWT_SECRET",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── LOGGER ─────────────────────────
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal("❌ logger init failed:", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── WIRING ─────────────────────────
	repo := restaurant.NewPostgresRepository(pgDB)
	aiClient := ai.NewOpenAIClient()

	analysisService := analysis.NewService(repo, aiClient, analysis.DefaultConfig(), logger)
	partnershipService := partnership.NewService(repo, aiClient, logger)
	restaurantService := restaurant.NewService(repo)
	communityService := community.NewService(community.NewRepository(pgDB), r2Client, logger)

	r := router.New(router.Handlers{
		Analysis:    analysis.NewHandler(analysisService),
		Partnership: partnership.NewHandler(partnershipService),
		Restaurant:  restaurant.NewHandler(restaurantService),
		Community:   community.NewHandler(communityService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logger.Infow("API running", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ server stopped:", err)
	}
}
