package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/apperr"
	"cinelog/models"
)

func TestListService_AddAndGet(t *testing.T) {
	svc := NewListService(newFakeLists())

	item, err := svc.Add(context.Background(), 1, models.ListFavorites, ListItemInput{
		ID:          "603",
		Title:       "The Matrix",
		PosterPath:  "/matrix.jpg",
		VoteAverage: 8.2,
		ReleaseDate: "1999-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(603), item.TMDBID)

	got, err := svc.Get(context.Background(), 1, models.ListFavorites)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Matrix", got[0].Title)
	assert.Equal(t, 8.2, got[0].VoteAverage)
}

func TestListService_AddAcceptsTMDBIDField(t *testing.T) {
	svc := NewListService(newFakeLists())

	item, err := svc.Add(context.Background(), 1, models.ListWatchlist, ListItemInput{
		TMDBID: "550",
		Title:  "Fight Club",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(550), item.TMDBID)
}

func TestListService_AddDuplicateConflicts(t *testing.T) {
	lists := newFakeLists()
	svc := NewListService(lists)

	in := ListItemInput{ID: "603", Title: "The Matrix"}
	_, err := svc.Add(context.Background(), 1, models.ListFavorites, in)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), 1, models.ListFavorites, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	got, err := svc.Get(context.Background(), 1, models.ListFavorites)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListService_ListsAreIndependent(t *testing.T) {
	svc := NewListService(newFakeLists())
	in := ListItemInput{ID: "603", Title: "The Matrix"}

	_, err := svc.Add(context.Background(), 1, models.ListFavorites, in)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), 1, models.ListWatchlist, in)
	require.NoError(t, err, "same movie on the other list is fine")

	// Other users have their own lists.
	_, err = svc.Add(context.Background(), 2, models.ListFavorites, in)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), 2, models.ListWatchlist)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListService_AddValidation(t *testing.T) {
	svc := NewListService(newFakeLists())

	tests := []struct {
		name string
		in   ListItemInput
	}{
		{"missing id", ListItemInput{Title: "The Matrix"}},
		{"missing title", ListItemInput{ID: "603"}},
		{"blank title", ListItemInput{ID: "603", Title: "   "}},
		{"zero id", ListItemInput{ID: "0", Title: "The Matrix"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), 1, models.ListFavorites, tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
		})
	}
}

func TestListService_Remove(t *testing.T) {
	svc := NewListService(newFakeLists())

	_, err := svc.Add(context.Background(), 1, models.ListFavorites, ListItemInput{ID: "603", Title: "The Matrix"})
	require.NoError(t, err)

	tmdbID, err := svc.Remove(context.Background(), 1, models.ListFavorites, "603")
	require.NoError(t, err)
	assert.Equal(t, int64(603), tmdbID)

	got, err := svc.Get(context.Background(), 1, models.ListFavorites)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListService_RemoveAbsent(t *testing.T) {
	svc := NewListService(newFakeLists())

	_, err := svc.Remove(context.Background(), 1, models.ListWatchlist, "999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListService_RemoveBadID(t *testing.T) {
	svc := NewListService(newFakeLists())

	_, err := svc.Remove(context.Background(), 1, models.ListFavorites, "not-a-number")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}
