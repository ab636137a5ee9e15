package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	restaurantSQL := `
		CREATE TABLE IF NOT EXISTS restaurant (
			kakao_place_id BIGINT PRIMARY KEY,
			restaurant_name VARCHAR(255),
			category VARCHAR(255),
			rating NUMERIC(3,1),
			rating_count INT,
			review_count INT,
			road_address VARCHAR(500),
			number_address VARCHAR(500),
			business_time VARCHAR(500),
			kakao_url VARCHAR(500),
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION
		)
	`
	if _, err := pool.Exec(ctx, restaurantSQL); err != nil {
		return err
	}

	reviewSQL := `
		CREATE TABLE IF NOT EXISTS review (
			id BIGSERIAL PRIMARY KEY,
			kakao_place_id BIGINT NOT NULL REFERENCES restaurant(kakao_place_id),
			source_review_id VARCHAR(128) NOT NULL,
			rating NUMERIC(3,1),
			content TEXT,
			UNIQUE (kakao_place_id, source_review_id)
		)
	`
	if _, err := pool.Exec(ctx, reviewSQL); err != nil {
		return err
	}

	postsSQL := `
		CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			category VARCHAR(50) NOT NULL DEFAULT 'GENERAL',
			image_url VARCHAR(500),
			my_store_category VARCHAR(50),
			partner_store_category VARCHAR(50),
			comment_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, postsSQL); err != nil {
		return err
	}

	commentsSQL := `
		CREATE TABLE IF NOT EXISTS comments (
			id BIGSERIAL PRIMARY KEY,
			post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			content VARCHAR(500) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, commentsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized")
	return nil
}
