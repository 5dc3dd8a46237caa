package services

import (
	"context"

	"cinelog/models"
)

// AdminUsers is the slice of the user store the admin surface needs.
type AdminUsers interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	SetBanned(ctx context.Context, id int64, banned bool) error
	ListAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

// AdminReviews is the slice of the review store the admin surface needs.
// Deleting an arbitrary review goes through ReviewService.Delete so the
// movie aggregate is recomputed.
type AdminReviews interface {
	ListAll(ctx context.Context) ([]models.Review, error)
	ListReported(ctx context.Context) ([]models.Review, error)
	Count(ctx context.Context) (int64, error)
	CountReported(ctx context.Context) (int64, error)
}

// AdminService backs the moderation endpoints. Authorization (admin role)
// is enforced by middleware before any of these run.
type AdminService struct {
	users   AdminUsers
	reviews AdminReviews
}

func NewAdminService(users AdminUsers, reviews AdminReviews) *AdminService {
	return &AdminService{users: users, reviews: reviews}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}

// ToggleBan flips a user's banned flag and returns the new state.
func (s *AdminService) ToggleBan(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	banned := !user.IsBanned
	if err := s.users.SetBanned(ctx, userID, banned); err != nil {
		return false, err
	}
	return banned, nil
}

func (s *AdminService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews.ListAll(ctx)
}

func (s *AdminService) ListReportedReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews.ListReported(ctx)
}

type Stats struct {
	Users           int64 `json:"users"`
	Reviews         int64 `json:"reviews"`
	ReportedReviews int64 `json:"reportedReviews"`
}

func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, err
	}
	reported, err := s.reviews.CountReported(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Users: users, Reviews: reviews, ReportedReviews: reported}, nil
}
