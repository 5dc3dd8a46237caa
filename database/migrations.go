package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the schema. Statements are idempotent so the server
// can run them unconditionally at startup.
func RunMigrations(db *sql.DB) error {
	usersSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN DEFAULT FALSE,
		is_banned BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(usersSQL); err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	moviesSQL := `
	CREATE TABLE IF NOT EXISTS movies (
		id UUID PRIMARY KEY,
		tmdb_id BIGINT UNIQUE NOT NULL,
		title VARCHAR(500) NOT NULL,
		overview TEXT NOT NULL DEFAULT '',
		poster_path VARCHAR(255) NOT NULL DEFAULT '',
		backdrop_path VARCHAR(255) NOT NULL DEFAULT '',
		release_date VARCHAR(20) NOT NULL DEFAULT '',
		vote_average DOUBLE PRECISION NOT NULL DEFAULT 0,
		vote_count BIGINT NOT NULL DEFAULT 0,
		popularity DOUBLE PRECISION NOT NULL DEFAULT 0,
		runtime INTEGER NOT NULL DEFAULT 0,
		tagline TEXT NOT NULL DEFAULT '',
		genres JSONB NOT NULL DEFAULT '[]',
		videos JSONB,
		credits JSONB,
		rating DOUBLE PRECISION,
		num_reviews INTEGER NOT NULL DEFAULT 0,
		last_updated TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_movies_popularity ON movies (popularity DESC);
	CREATE INDEX IF NOT EXISTS idx_movies_last_updated ON movies (last_updated);
	`
	if _, err := db.Exec(moviesSQL); err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}

	listsSQL := `
	CREATE TABLE IF NOT EXISTS list_items (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		list VARCHAR(20) NOT NULL CHECK (list IN ('favorites', 'watchlist')),
		tmdb_id BIGINT NOT NULL,
		title VARCHAR(500) NOT NULL,
		poster_path VARCHAR(255) NOT NULL DEFAULT '',
		vote_average DOUBLE PRECISION NOT NULL DEFAULT 0,
		release_date VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, list, tmdb_id)
	);
	`
	if _, err := db.Exec(listsSQL); err != nil {
		return fmt.Errorf("failed to run list_items migration: %w", err)
	}

	reviewsSQL := `
	CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		movie_id UUID NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
		title VARCHAR(100) NOT NULL,
		content VARCHAR(1000) NOT NULL,
		reported BOOLEAN NOT NULL DEFAULT FALSE,
		report_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (movie_id, user_id)
	);

	CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews (user_id);
	CREATE INDEX IF NOT EXISTS idx_reviews_reported ON reviews (reported);

	CREATE TABLE IF NOT EXISTS review_likes (
		review_id BIGINT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (review_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS review_reports (
		review_id BIGINT NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (review_id, user_id)
	);
	`
	if _, err := db.Exec(reviewsSQL); err != nil {
		return fmt.Errorf("failed to run reviews migration: %w", err)
	}

	return nil
}
