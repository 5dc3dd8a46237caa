package models

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a cached catalog record. The row is keyed internally by ID and
// externally by the catalog's numeric TMDBID, which is unique.
type Movie struct {
	ID           uuid.UUID  `json:"id,omitzero"`
	TMDBID       int64      `json:"tmdbId"`
	Title        string     `json:"title"`
	Overview     string     `json:"overview"`
	PosterPath   string     `json:"poster_path"`
	BackdropPath string     `json:"backdrop_path"`
	ReleaseDate  string     `json:"release_date"`
	VoteAverage  float64    `json:"vote_average"`
	VoteCount    int64      `json:"vote_count"`
	Popularity   float64    `json:"popularity"`
	Runtime      int        `json:"runtime,omitempty"`
	Tagline      string     `json:"tagline,omitempty"`
	Genres       []Genre    `json:"genres"`
	Videos       *VideoList `json:"videos,omitempty"`
	Credits      *Credits   `json:"credits,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	NumReviews   int        `json:"numReviews"`
	LastUpdated  time.Time  `json:"lastUpdated"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type VideoList struct {
	Results []Video `json:"results"`
}

type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// NeedsUpdate reports whether the cached record is stale. A record that was
// never stamped is always stale.
func (m *Movie) NeedsUpdate(ttl time.Duration) bool {
	if m.LastUpdated.IsZero() {
		return true
	}
	return time.Since(m.LastUpdated) > ttl
}

// HasVideos reports whether the media block was ever populated. A detail
// fetch always stores a non-nil block, even when the provider returned no
// videos, so nil means the row only ever saw a list-page upsert.
func (m *Movie) HasVideos() bool {
	return m.Videos != nil
}
