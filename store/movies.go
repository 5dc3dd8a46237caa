// Package store implements persistence over Postgres. All cross-request
// coordination relies on the schema's unique constraints and single-statement
// upserts; there is no in-process locking.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"cinelog/apperr"
	"cinelog/models"
)

type MovieStore struct {
	db *sql.DB
}

func NewMovieStore(db *sql.DB) *MovieStore {
	return &MovieStore{db: db}
}

const movieColumns = `id, tmdb_id, title, overview, poster_path, backdrop_path, release_date,
	vote_average, vote_count, popularity, runtime, tagline, genres, videos, credits,
	rating, num_reviews, last_updated, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	var m models.Movie
	var genres []byte
	var videos, credits []byte
	var rating sql.NullFloat64

	err := row.Scan(
		&m.ID, &m.TMDBID, &m.Title, &m.Overview, &m.PosterPath, &m.BackdropPath, &m.ReleaseDate,
		&m.VoteAverage, &m.VoteCount, &m.Popularity, &m.Runtime, &m.Tagline, &genres, &videos, &credits,
		&rating, &m.NumReviews, &m.LastUpdated, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(genres, &m.Genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}
	if videos != nil {
		m.Videos = &models.VideoList{}
		if err := json.Unmarshal(videos, m.Videos); err != nil {
			return nil, fmt.Errorf("failed to decode videos: %w", err)
		}
	}
	if credits != nil {
		m.Credits = &models.Credits{}
		if err := json.Unmarshal(credits, m.Credits); err != nil {
			return nil, fmt.Errorf("failed to decode credits: %w", err)
		}
	}
	if rating.Valid {
		m.Rating = &rating.Float64
	}
	return &m, nil
}

// GetByTMDBID looks up a cache row by external catalog id.
func (s *MovieStore) GetByTMDBID(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE tmdb_id = $1`, tmdbID)
	m, err := scanMovie(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("movie %d not found", tmdbID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie by tmdb id: %w", err)
	}
	return m, nil
}

// GetByID looks up a cache row by internal id.
func (s *MovieStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id)
	m, err := scanMovie(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("movie %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}
	return m, nil
}

// TopByPopularity returns the cached browse page.
func (s *MovieStore) TopByPopularity(ctx context.Context, limit, offset int) ([]models.Movie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY popularity DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

func (s *MovieStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

// UpsertSummary writes the base fields of a list-page record, keyed on the
// unique external id. Fields only present on detail fetches (genres, videos,
// credits, runtime, tagline) are left untouched on conflict.
func (s *MovieStore) UpsertSummary(ctx context.Context, m *models.Movie) error {
	query := `
		INSERT INTO movies (id, tmdb_id, title, overview, poster_path, backdrop_path, release_date,
			vote_average, vote_count, popularity, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			overview = EXCLUDED.overview,
			poster_path = EXCLUDED.poster_path,
			backdrop_path = EXCLUDED.backdrop_path,
			release_date = EXCLUDED.release_date,
			vote_average = EXCLUDED.vote_average,
			vote_count = EXCLUDED.vote_count,
			popularity = EXCLUDED.popularity,
			last_updated = EXCLUDED.last_updated,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(), m.TMDBID, m.Title, m.Overview, m.PosterPath, m.BackdropPath, m.ReleaseDate,
		m.VoteAverage, m.VoteCount, m.Popularity, m.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to upsert movie %d: %w", m.TMDBID, err)
	}
	return nil
}

// UpsertDetail writes a full detail record, last write wins.
func (s *MovieStore) UpsertDetail(ctx context.Context, m *models.Movie) error {
	genres, err := json.Marshal(m.Genres)
	if err != nil {
		return fmt.Errorf("failed to encode genres: %w", err)
	}
	var videos, credits []byte
	if m.Videos != nil {
		if videos, err = json.Marshal(m.Videos); err != nil {
			return fmt.Errorf("failed to encode videos: %w", err)
		}
	}
	if m.Credits != nil {
		if credits, err = json.Marshal(m.Credits); err != nil {
			return fmt.Errorf("failed to encode credits: %w", err)
		}
	}

	query := `
		INSERT INTO movies (id, tmdb_id, title, overview, poster_path, backdrop_path, release_date,
			vote_average, vote_count, popularity, runtime, tagline, genres, videos, credits, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			overview = EXCLUDED.overview,
			poster_path = EXCLUDED.poster_path,
			backdrop_path = EXCLUDED.backdrop_path,
			release_date = EXCLUDED.release_date,
			vote_average = EXCLUDED.vote_average,
			vote_count = EXCLUDED.vote_count,
			popularity = EXCLUDED.popularity,
			runtime = EXCLUDED.runtime,
			tagline = EXCLUDED.tagline,
			genres = EXCLUDED.genres,
			videos = EXCLUDED.videos,
			credits = EXCLUDED.credits,
			last_updated = EXCLUDED.last_updated,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err = s.db.ExecContext(ctx, query,
		uuid.New(), m.TMDBID, m.Title, m.Overview, m.PosterPath, m.BackdropPath, m.ReleaseDate,
		m.VoteAverage, m.VoteCount, m.Popularity, m.Runtime, m.Tagline, genres, videos, credits,
		m.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to upsert movie %d: %w", m.TMDBID, err)
	}
	return nil
}

// CreateIfAbsent inserts a minimal record unless the external id already
// exists, and returns the winning row either way.
func (s *MovieStore) CreateIfAbsent(ctx context.Context, m *models.Movie) (*models.Movie, error) {
	query := `
		INSERT INTO movies (id, tmdb_id, title, overview, poster_path, backdrop_path, release_date,
			vote_average, vote_count, popularity, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (tmdb_id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.New(), m.TMDBID, m.Title, m.Overview, m.PosterPath, m.BackdropPath, m.ReleaseDate,
		m.VoteAverage, m.VoteCount, m.Popularity, m.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie %d: %w", m.TMDBID, err)
	}
	return s.GetByTMDBID(ctx, m.TMDBID)
}

// SetRating persists the recomputed review aggregate.
func (s *MovieStore) SetRating(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE movies SET rating = $1, num_reviews = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		rating, numReviews, id)
	if err != nil {
		return fmt.Errorf("failed to set movie rating: %w", err)
	}
	return nil
}
