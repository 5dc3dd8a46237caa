package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"cinelog/apperr"
	"cinelog/models"
)

type ReviewStore struct {
	db *sql.DB
}

func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// reviewSelect joins the author name, movie title and like count alongside
// the review row itself.
const reviewSelect = `
	SELECT r.id, r.user_id, u.name, r.movie_id, m.title, r.rating, r.title, r.content,
		(SELECT COUNT(*) FROM review_likes l WHERE l.review_id = r.id),
		r.reported, r.report_count, r.created_at, r.updated_at
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN movies m ON m.id = r.movie_id
`

func scanReview(row rowScanner) (*models.Review, error) {
	var r models.Review
	err := row.Scan(&r.ID, &r.UserID, &r.UserName, &r.MovieID, &r.MovieTitle, &r.Rating,
		&r.Title, &r.Content, &r.Likes, &r.Reported, &r.ReportCount, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReviewStore) queryReviews(ctx context.Context, where string, args ...any) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, reviewSelect+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *r)
	}
	return reviews, rows.Err()
}

func (s *ReviewStore) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	row := s.db.QueryRowContext(ctx, reviewSelect+` WHERE r.id = $1`, id)
	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("review not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return r, nil
}

func (s *ReviewStore) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.Review, error) {
	return s.queryReviews(ctx, ` WHERE r.movie_id = $1 ORDER BY r.created_at DESC`, movieID)
}

func (s *ReviewStore) ListByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	return s.queryReviews(ctx, ` WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
}

func (s *ReviewStore) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.queryReviews(ctx, ` ORDER BY r.created_at DESC`)
}

func (s *ReviewStore) ListReported(ctx context.Context) ([]models.Review, error) {
	return s.queryReviews(ctx, ` WHERE r.reported = TRUE ORDER BY r.created_at DESC`)
}

// Create inserts a review. The (movie_id, user_id) unique constraint is the
// backstop against duplicate reviews under concurrent submits.
func (s *ReviewStore) Create(ctx context.Context, r *models.Review) (*models.Review, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO reviews (user_id, movie_id, rating, title, content)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		r.UserID, r.MovieID, r.Rating, r.Title, r.Content).Scan(&id)
	if isUniqueViolation(err) {
		return nil, apperr.Conflict("you have already reviewed this movie")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *ReviewStore) Update(ctx context.Context, id int64, rating int, content string) (*models.Review, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE reviews SET rating = $1, content = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		rating, content, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *ReviewStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("review not found")
	}
	return nil
}

// Exists reports whether the user already reviewed the movie.
func (s *ReviewStore) Exists(ctx context.Context, movieID uuid.UUID, userID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE movie_id = $1 AND user_id = $2)`,
		movieID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

// Aggregate returns the mean rating and review count for a movie.
func (s *ReviewStore) Aggregate(ctx context.Context, movieID uuid.UUID) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT AVG(rating), COUNT(*) FROM reviews WHERE movie_id = $1`, movieID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	return avg.Float64, count, nil
}

// ToggleLike likes the review for the user, or removes the like if already
// present, and returns the resulting count.
func (s *ReviewStore) ToggleLike(ctx context.Context, reviewID, userID int64) (int, bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM review_likes WHERE review_id = $1 AND user_id = $2`, reviewID, userID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to toggle like: %w", err)
	}

	liked := false
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO review_likes (review_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			reviewID, userID)
		if err != nil {
			return 0, false, fmt.Errorf("failed to like review: %w", err)
		}
		liked = true
	}

	var count int
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM review_likes WHERE review_id = $1`, reviewID).Scan(&count)
	if err != nil {
		return 0, false, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, liked, nil
}

// AddReport records a report, once per user, and flags the review.
func (s *ReviewStore) AddReport(ctx context.Context, reviewID, userID int64, reason string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO review_reports (review_id, user_id, reason) VALUES ($1, $2, $3)`,
		reviewID, userID, reason)
	if isUniqueViolation(err) {
		return apperr.Conflict("you have already reported this review")
	}
	if err != nil {
		return fmt.Errorf("failed to report review: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE reviews SET reported = TRUE, report_count = report_count + 1 WHERE id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("failed to flag review: %w", err)
	}
	return nil
}

func (s *ReviewStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

func (s *ReviewStore) CountReported(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE reported = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reported reviews: %w", err)
	}
	return count, nil
}
