package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cinelog/apperr"
	"cinelog/models"
)

// ListMembership is the persisted list collection.
type ListMembership interface {
	Get(ctx context.Context, userID int64, list models.ListName) ([]models.ListItem, error)
	Exists(ctx context.Context, userID int64, list models.ListName, tmdbID int64) (bool, error)
	Add(ctx context.Context, userID int64, list models.ListName, item models.ListItem) error
	Remove(ctx context.Context, userID int64, list models.ListName, tmdbID int64) error
}

// ListService maintains a user's favorites and watchlist. The two lists are
// completely independent of each other.
type ListService struct {
	lists ListMembership
}

func NewListService(lists ListMembership) *ListService {
	return &ListService{lists: lists}
}

// ListItemInput is a movie snapshot as submitted by the client. The external
// id is accepted under either field name.
type ListItemInput struct {
	ID          json.Number `json:"id"`
	TMDBID      json.Number `json:"tmdbId"`
	Title       string      `json:"title"`
	PosterPath  string      `json:"poster_path"`
	VoteAverage float64     `json:"vote_average"`
	ReleaseDate string      `json:"release_date"`
}

// externalID normalizes the two accepted id fields to one number.
func (in ListItemInput) externalID() (int64, bool) {
	raw := in.ID.String()
	if raw == "" {
		raw = in.TMDBID.String()
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// Add appends a snapshot to the list. Duplicate external ids within the same
// list are rejected; the same movie may still sit on the other list.
func (s *ListService) Add(ctx context.Context, userID int64, list models.ListName, in ListItemInput) (*models.ListItem, error) {
	tmdbID, ok := in.externalID()
	if !ok || strings.TrimSpace(in.Title) == "" {
		return nil, apperr.InvalidInput("movie ID and title are required")
	}

	exists, err := s.lists.Exists(ctx, userID, list, tmdbID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(fmt.Sprintf("movie already in %s", list))
	}

	item := models.ListItem{
		TMDBID:      tmdbID,
		Title:       in.Title,
		PosterPath:  in.PosterPath,
		VoteAverage: in.VoteAverage,
		ReleaseDate: in.ReleaseDate,
	}
	if err := s.lists.Add(ctx, userID, list, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes a snapshot by external id. The raw id comes straight from
// the URL and must be numeric.
func (s *ListService) Remove(ctx context.Context, userID int64, list models.ListName, rawID string) (int64, error) {
	tmdbID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, apperr.InvalidInput("invalid movie ID format")
	}
	if err := s.lists.Remove(ctx, userID, list, tmdbID); err != nil {
		return 0, err
	}
	return tmdbID, nil
}

// Get returns the stored snapshots verbatim; entries are never refreshed
// against the catalog.
func (s *ListService) Get(ctx context.Context, userID int64, list models.ListName) ([]models.ListItem, error) {
	return s.lists.Get(ctx, userID, list)
}
