package models

import "time"

// ListName identifies one of a user's movie lists. The lists are completely
// independent: the same movie may be on both, either, or neither.
type ListName string

const (
	ListFavorites ListName = "favorites"
	ListWatchlist ListName = "watchlist"
)

func (l ListName) Valid() bool {
	return l == ListFavorites || l == ListWatchlist
}

// ListItem is a denormalized snapshot of select movie fields taken at the
// moment the user added the movie. It is never refreshed against the cache.
type ListItem struct {
	TMDBID      int64     `json:"tmdbId"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path"`
	VoteAverage float64   `json:"vote_average"`
	ReleaseDate string    `json:"release_date"`
	AddedAt     time.Time `json:"addedAt"`
}
