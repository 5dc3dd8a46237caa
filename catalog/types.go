package catalog

// Raw provider record shapes. Optional fields stay pointers or zero values
// here; normalization into storage shapes happens in the services package.

// Movie is a summary record as returned by list endpoints.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// Page is a paged list response.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int64   `json:"total_results"`
}

// MovieDetails is the full record from the movie detail endpoint, optionally
// with appended videos and credits.
type MovieDetails struct {
	Movie
	Runtime int        `json:"runtime"`
	Tagline string     `json:"tagline"`
	Genres  []Genre    `json:"genres"`
	Videos  *VideoList `json:"videos"`
	Credits *Credits   `json:"credits"`
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

// DiscoverParams are the filter parameters accepted by the discovery/search
// endpoints. A non-empty Query switches the client to the search endpoint.
type DiscoverParams struct {
	Query   string
	GenreID string
	SortBy  string
	Year    string
	Page    int
}

// SortPopularityDesc is the provider's default sort key.
const SortPopularityDesc = "popularity.desc"

// IsDefaultBrowse reports whether the parameters describe the plain browse
// page: no search, no genre filter, default sort, no year. Only this shape
// is served from (and written back to) the cache.
func (p DiscoverParams) IsDefaultBrowse() bool {
	if p.Query != "" || p.Year != "" {
		return false
	}
	if p.GenreID != "" && p.GenreID != "all" {
		return false
	}
	return p.SortBy == "" || p.SortBy == SortPopularityDesc
}
