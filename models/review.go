package models

import (
	"time"

	"github.com/google/uuid"
)

// Review references its movie by internal id, never by the external catalog
// id. At most one review exists per (movie, user) pair.
type Review struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName,omitempty"`
	MovieID     uuid.UUID `json:"movieId"`
	MovieTitle  string    `json:"movieTitle,omitempty"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Likes       int       `json:"likes"`
	Reported    bool      `json:"reported"`
	ReportCount int       `json:"reportCount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
