package services

import (
	"cinelog/catalog"
	"cinelog/models"
)

// NormalizeSummary maps a raw provider list record to the cache-storage
// shape. Missing optional fields become safe zero values; a nil input yields
// a nil output. No side effects.
func NormalizeSummary(m *catalog.Movie) *models.Movie {
	if m == nil {
		return nil
	}
	return &models.Movie{
		TMDBID:       m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  m.ReleaseDate,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		Popularity:   m.Popularity,
		Genres:       []models.Genre{},
	}
}

// NormalizeDetail maps a raw provider detail record, including the appended
// media blocks. The video block always comes out non-nil: an empty result
// list when the provider omitted it.
func NormalizeDetail(d *catalog.MovieDetails) *models.Movie {
	if d == nil {
		return nil
	}

	m := NormalizeSummary(&d.Movie)
	m.Runtime = d.Runtime
	m.Tagline = d.Tagline

	m.Genres = make([]models.Genre, 0, len(d.Genres))
	for _, g := range d.Genres {
		m.Genres = append(m.Genres, models.Genre{ID: g.ID, Name: g.Name})
	}

	m.Videos = &models.VideoList{Results: []models.Video{}}
	if d.Videos != nil {
		for _, v := range d.Videos.Results {
			m.Videos.Results = append(m.Videos.Results, models.Video{
				Key:  v.Key,
				Name: v.Name,
				Site: v.Site,
				Type: v.Type,
			})
		}
	}

	if d.Credits != nil {
		credits := &models.Credits{
			Cast: make([]models.CastMember, 0, len(d.Credits.Cast)),
			Crew: make([]models.CrewMember, 0, len(d.Credits.Crew)),
		}
		for _, c := range d.Credits.Cast {
			credits.Cast = append(credits.Cast, models.CastMember{
				ID:          c.ID,
				Name:        c.Name,
				Character:   c.Character,
				ProfilePath: c.ProfilePath,
				Order:       c.Order,
			})
		}
		for _, c := range d.Credits.Crew {
			credits.Crew = append(credits.Crew, models.CrewMember{
				ID:         c.ID,
				Name:       c.Name,
				Job:        c.Job,
				Department: c.Department,
			})
		}
		m.Credits = credits
	}

	return m
}
