package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/catalog"
)

func TestNormalizeSummary(t *testing.T) {
	raw := &catalog.Movie{
		ID:          603,
		Title:       "The Matrix",
		Overview:    "A hacker learns the truth.",
		PosterPath:  "/matrix.jpg",
		ReleaseDate: "1999-03-31",
		VoteAverage: 8.2,
		VoteCount:   24000,
		Popularity:  91.5,
	}

	m := NormalizeSummary(raw)
	require.NotNil(t, m)
	assert.Equal(t, int64(603), m.TMDBID)
	assert.Equal(t, "The Matrix", m.Title)
	assert.Equal(t, 8.2, m.VoteAverage)
	assert.NotNil(t, m.Genres)
	assert.Empty(t, m.Genres)
	assert.Nil(t, m.Videos, "summary records carry no media block")
	assert.True(t, m.LastUpdated.IsZero())
}

func TestNormalizeSummary_Nil(t *testing.T) {
	assert.Nil(t, NormalizeSummary(nil))
	assert.Nil(t, NormalizeDetail(nil))
}

func TestNormalizeSummary_EmptyOptionalFields(t *testing.T) {
	m := NormalizeSummary(&catalog.Movie{ID: 1, Title: "Bare"})
	require.NotNil(t, m)
	assert.Empty(t, m.PosterPath)
	assert.Empty(t, m.ReleaseDate)
	assert.Zero(t, m.VoteAverage)
}

func TestNormalizeDetail(t *testing.T) {
	raw := &catalog.MovieDetails{
		Movie:   catalog.Movie{ID: 603, Title: "The Matrix"},
		Runtime: 136,
		Tagline: "Free your mind.",
		Genres:  []catalog.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Videos: &catalog.VideoList{Results: []catalog.Video{
			{Key: "abc123", Name: "Trailer", Site: "YouTube", Type: "Trailer"},
		}},
		Credits: &catalog.Credits{
			Cast: []catalog.CastMember{{ID: 6384, Name: "Keanu Reeves", Character: "Neo", Order: 0}},
			Crew: []catalog.CrewMember{{ID: 9340, Name: "Lana Wachowski", Job: "Director", Department: "Directing"}},
		},
	}

	m := NormalizeDetail(raw)
	require.NotNil(t, m)
	assert.Equal(t, 136, m.Runtime)
	assert.Equal(t, "Free your mind.", m.Tagline)
	require.Len(t, m.Genres, 2)
	assert.Equal(t, "Action", m.Genres[0].Name)
	require.NotNil(t, m.Videos)
	require.Len(t, m.Videos.Results, 1)
	assert.Equal(t, "abc123", m.Videos.Results[0].Key)
	require.NotNil(t, m.Credits)
	assert.Equal(t, "Neo", m.Credits.Cast[0].Character)
	assert.Equal(t, "Director", m.Credits.Crew[0].Job)
}

func TestNormalizeDetail_MissingMediaBlocks(t *testing.T) {
	m := NormalizeDetail(&catalog.MovieDetails{Movie: catalog.Movie{ID: 603, Title: "The Matrix"}})
	require.NotNil(t, m)
	require.NotNil(t, m.Videos, "the video block is always populated, even when the provider omits it")
	assert.Empty(t, m.Videos.Results)
	assert.Nil(t, m.Credits)
	assert.True(t, m.HasVideos())
}
