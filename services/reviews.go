package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"cinelog/apperr"
	"cinelog/models"
)

// ReviewRepo is the persisted review collection. The (movie, user) pair is
// unique.
type ReviewRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Review, error)
	Create(ctx context.Context, r *models.Review) (*models.Review, error)
	Update(ctx context.Context, id int64, rating int, content string) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, movieID uuid.UUID, userID int64) (bool, error)
	Aggregate(ctx context.Context, movieID uuid.UUID) (float64, int, error)
	ToggleLike(ctx context.Context, reviewID, userID int64) (int, bool, error)
	AddReport(ctx context.Context, reviewID, userID int64, reason string) error
}

// ReviewMovies is the slice of the movie service reviews depend on: resolving
// an external id to a backing cache row, cache-only lookups, and persisting
// the rating aggregate.
type ReviewMovies interface {
	ResolveExternal(ctx context.Context, tmdbID int64) (*models.Movie, error)
	CachedByTMDBID(ctx context.Context, tmdbID int64) (*models.Movie, error)
	SetAggregate(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error
}

type ReviewService struct {
	reviews ReviewRepo
	movies  ReviewMovies
}

func NewReviewService(reviews ReviewRepo, movies ReviewMovies) *ReviewService {
	return &ReviewService{reviews: reviews, movies: movies}
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

const (
	maxReviewTitle   = 100
	maxReviewContent = 1000
)

// Create posts a review keyed by the external catalog id. The movie is
// resolved to a cache row first, fetching a minimal record from the provider
// if necessary, because the stored review references the internal id.
func (s *ReviewService) Create(ctx context.Context, user *models.User, tmdbID int64, in ReviewInput) (*models.Review, error) {
	if err := validateReviewInput(in, true); err != nil {
		return nil, err
	}

	movie, err := s.movies.ResolveExternal(ctx, tmdbID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviews.Exists(ctx, movie.ID, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("you have already reviewed this movie")
	}

	review, err := s.reviews.Create(ctx, &models.Review{
		UserID:  user.ID,
		MovieID: movie.ID,
		Rating:  in.Rating,
		Title:   strings.TrimSpace(in.Title),
		Content: strings.TrimSpace(in.Content),
	})
	if err != nil {
		return nil, err
	}

	s.recomputeRating(ctx, movie.ID)
	return review, nil
}

// ListForMovie returns a movie's reviews by external id. A movie that was
// never cached has no internal id and therefore no reviews: empty list, not
// an error.
func (s *ReviewService) ListForMovie(ctx context.Context, tmdbID int64) ([]models.Review, error) {
	movie, err := s.movies.CachedByTMDBID(ctx, tmdbID)
	if errors.Is(err, apperr.ErrNotFound) {
		return []models.Review{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.reviews.ListByMovie(ctx, movie.ID)
}

func (s *ReviewService) ListForUser(ctx context.Context, userID int64) ([]models.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*models.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// Update patches a review's rating and/or content. Only the author or an
// admin may update.
func (s *ReviewService) Update(ctx context.Context, user *models.User, id int64, in ReviewInput) (*models.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != user.ID && !user.IsAdmin {
		return nil, apperr.Forbidden("not authorized to update this review")
	}

	rating := review.Rating
	if in.Rating != 0 {
		rating = in.Rating
	}
	content := review.Content
	if strings.TrimSpace(in.Content) != "" {
		content = strings.TrimSpace(in.Content)
	}
	if err := validateReviewInput(ReviewInput{Rating: rating, Title: review.Title, Content: content}, false); err != nil {
		return nil, err
	}

	updated, err := s.reviews.Update(ctx, id, rating, content)
	if err != nil {
		return nil, err
	}

	s.recomputeRating(ctx, review.MovieID)
	return updated, nil
}

// Delete removes a review. Only the author or an admin may delete.
func (s *ReviewService) Delete(ctx context.Context, user *models.User, id int64) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != user.ID && !user.IsAdmin {
		return apperr.Forbidden("not authorized to delete this review")
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	s.recomputeRating(ctx, review.MovieID)
	return nil
}

type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ToggleLike likes or unlikes a review for the user.
func (s *ReviewService) ToggleLike(ctx context.Context, user *models.User, id int64) (*LikeResult, error) {
	if _, err := s.reviews.GetByID(ctx, id); err != nil {
		return nil, err
	}
	likes, liked, err := s.reviews.ToggleLike(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Likes: likes, Liked: liked}, nil
}

// Report flags a review, once per reporting user.
func (s *ReviewService) Report(ctx context.Context, user *models.User, id int64, reason string) error {
	if _, err := s.reviews.GetByID(ctx, id); err != nil {
		return err
	}
	return s.reviews.AddReport(ctx, id, user.ID, reason)
}

// recomputeRating persists the arithmetic mean of the movie's review
// ratings, rounded to one decimal. When the last review is gone the stored
// aggregate is left untouched rather than reset to zero. Failures here never
// fail the review operation itself.
func (s *ReviewService) recomputeRating(ctx context.Context, movieID uuid.UUID) {
	avg, count, err := s.reviews.Aggregate(ctx, movieID)
	if err != nil {
		slog.Error("failed to aggregate review ratings", "movie_id", movieID, "error", err)
		return
	}
	if count == 0 {
		return
	}
	rounded := math.Round(avg*10) / 10
	if err := s.movies.SetAggregate(ctx, movieID, rounded, count); err != nil {
		slog.Error("failed to persist movie rating", "movie_id", movieID, "error", err)
	}
}

func validateReviewInput(in ReviewInput, requireAll bool) error {
	if requireAll && (in.Rating == 0 || strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "") {
		return apperr.InvalidInput("please provide rating, title, and content")
	}
	if in.Rating < 1 || in.Rating > 10 {
		return apperr.InvalidInput("rating must be between 1 and 10")
	}
	if len(in.Title) > maxReviewTitle {
		return apperr.InvalidInputf("title must be at most %d characters", maxReviewTitle)
	}
	if len(in.Content) > maxReviewContent {
		return apperr.InvalidInputf("content must be at most %d characters", maxReviewContent)
	}
	return nil
}
