package store

import (
	"context"
	"database/sql"
	"fmt"

	"cinelog/apperr"
	"cinelog/models"
)

type ListStore struct {
	db *sql.DB
}

func NewListStore(db *sql.DB) *ListStore {
	return &ListStore{db: db}
}

// Get returns the stored snapshots for one of a user's lists, oldest first
// (append order).
func (s *ListStore) Get(ctx context.Context, userID int64, list models.ListName) ([]models.ListItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tmdb_id, title, poster_path, vote_average, release_date, created_at
		 FROM list_items WHERE user_id = $1 AND list = $2 ORDER BY id ASC`,
		userID, list)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", list, err)
	}
	defer rows.Close()

	items := []models.ListItem{}
	for rows.Next() {
		var item models.ListItem
		if err := rows.Scan(&item.TMDBID, &item.Title, &item.PosterPath, &item.VoteAverage,
			&item.ReleaseDate, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *ListStore) Exists(ctx context.Context, userID int64, list models.ListName, tmdbID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM list_items WHERE user_id = $1 AND list = $2 AND tmdb_id = $3)`,
		userID, list, tmdbID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s membership: %w", list, err)
	}
	return exists, nil
}

// Add appends a snapshot. The (user, list, tmdb_id) unique constraint is the
// backstop against concurrent duplicate adds.
func (s *ListStore) Add(ctx context.Context, userID int64, list models.ListName, item models.ListItem) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO list_items (user_id, list, tmdb_id, title, poster_path, vote_average, release_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, list, item.TMDBID, item.Title, item.PosterPath, item.VoteAverage, item.ReleaseDate)
	if isUniqueViolation(err) {
		return apperr.Conflict(fmt.Sprintf("movie already in %s", list))
	}
	if err != nil {
		return fmt.Errorf("failed to add to %s: %w", list, err)
	}
	return nil
}

func (s *ListStore) Remove(ctx context.Context, userID int64, list models.ListName, tmdbID int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM list_items WHERE user_id = $1 AND list = $2 AND tmdb_id = $3`,
		userID, list, tmdbID)
	if err != nil {
		return fmt.Errorf("failed to remove from %s: %w", list, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound(fmt.Sprintf("movie not found in %s", list))
	}
	return nil
}
