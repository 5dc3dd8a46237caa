package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cinelog/apperr"
	"cinelog/catalog"
	"cinelog/models"
)

// pageSize matches the provider's fixed page length, so cached pages line up
// with provider pages.
const pageSize = 20

// MovieCache is the persisted movie collection, keyed by the unique external
// catalog id. Upserts are atomic on that key.
type MovieCache interface {
	GetByTMDBID(ctx context.Context, tmdbID int64) (*models.Movie, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Movie, error)
	TopByPopularity(ctx context.Context, limit, offset int) ([]models.Movie, error)
	Count(ctx context.Context) (int64, error)
	UpsertSummary(ctx context.Context, m *models.Movie) error
	UpsertDetail(ctx context.Context, m *models.Movie) error
	CreateIfAbsent(ctx context.Context, m *models.Movie) (*models.Movie, error)
	SetRating(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error
}

// Catalog is the external movie catalog client.
type Catalog interface {
	Trending(ctx context.Context) (*catalog.Page, error)
	Discover(ctx context.Context, p catalog.DiscoverParams) (*catalog.Page, error)
	MovieDetails(ctx context.Context, id int64, appendMedia bool) (*catalog.MovieDetails, error)
}

// MovieService resolves movie requests cache-first with provider fallback.
// Constructed once at startup and shared by handlers.
type MovieService struct {
	cache   MovieCache
	catalog Catalog
	ttl     time.Duration
	now     func() time.Time
}

func NewMovieService(cache MovieCache, cat Catalog, ttl time.Duration) *MovieService {
	return &MovieService{
		cache:   cache,
		catalog: cat,
		ttl:     ttl,
		now:     time.Now,
	}
}

// MoviePage is a paged movie listing.
type MoviePage struct {
	Results    []models.Movie `json:"results"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// Trending returns the trending page, serving the cached top-popularity page
// while it is fresh and refreshing from the provider otherwise. On refresh
// the freshly fetched records are returned; caching them is best-effort.
func (s *MovieService) Trending(ctx context.Context) ([]models.Movie, error) {
	cached, err := s.cache.TopByPopularity(ctx, pageSize, 0)
	if err != nil {
		slog.Error("trending cache read failed", "error", err)
	} else if len(cached) > 0 && !s.pageStale(cached) {
		return cached, nil
	}

	page, err := s.catalog.Trending(ctx)
	if err != nil {
		return nil, providerErr(err)
	}
	return s.cacheSummaries(ctx, page.Results), nil
}

// Discover serves search/discovery queries. Only the default browse shape
// (no query, no genre, default sort, no year) touches the cache; everything
// else always delegates to the provider. Provider failures in this path are
// never degraded to stale cache.
func (s *MovieService) Discover(ctx context.Context, params catalog.DiscoverParams) (*MoviePage, error) {
	pageNum := max(params.Page, 1)

	if params.IsDefaultBrowse() {
		cached, err := s.cache.TopByPopularity(ctx, pageSize, (pageNum-1)*pageSize)
		if err != nil {
			slog.Error("browse cache read failed", "error", err)
		} else if len(cached) > 0 && !s.pageStale(cached) {
			total, err := s.cache.Count(ctx)
			if err != nil {
				return nil, err
			}
			return &MoviePage{
				Results:    cached,
				Page:       pageNum,
				TotalPages: int((total + pageSize - 1) / pageSize),
			}, nil
		}
	}

	page, err := s.catalog.Discover(ctx, params)
	if err != nil {
		return nil, providerErr(err)
	}

	results := make([]models.Movie, 0, len(page.Results))
	if params.IsDefaultBrowse() {
		results = s.cacheSummaries(ctx, page.Results)
	} else {
		for i := range page.Results {
			results = append(results, *NormalizeSummary(&page.Results[i]))
		}
	}

	return &MoviePage{Results: results, Page: page.Page, TotalPages: page.TotalPages}, nil
}

// GetByRef resolves a single movie. External refs follow the cache-first,
// provider-fallback policy; internal refs only ever hit the store.
func (s *MovieService) GetByRef(ctx context.Context, ref models.MovieRef) (*models.Movie, error) {
	if tmdbID, ok := ref.External(); ok {
		return s.getExternal(ctx, tmdbID)
	}
	id, _ := ref.Internal()
	return s.cache.GetByID(ctx, id)
}

func (s *MovieService) getExternal(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	cached, err := s.cache.GetByTMDBID(ctx, tmdbID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	// A fresh row that already carries the media block never triggers a
	// provider call.
	if cached != nil && !cached.NeedsUpdate(s.ttl) && cached.HasVideos() {
		return cached, nil
	}

	details, err := s.catalog.MovieDetails(ctx, tmdbID, true)
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, apperr.NotFoundf("movie %d not found in catalog", tmdbID)
		}
		// Degrade to the stale row rather than failing the request.
		if cached != nil {
			slog.Warn("provider unavailable, serving stale movie", "tmdb_id", tmdbID, "error", err)
			return cached, nil
		}
		return nil, providerErr(err)
	}

	m := NormalizeDetail(details)
	m.LastUpdated = s.now()
	if err := s.cache.UpsertDetail(ctx, m); err != nil {
		// The response does not depend on the cache write.
		slog.Error("failed to cache movie detail", "tmdb_id", tmdbID, "error", err)
	}
	return m, nil
}

// ResolveExternal returns the cache row for an external id, creating a
// minimal one from the provider if the movie was never cached. Reviews
// attach to internal ids, so this is what guarantees them a backing row.
func (s *MovieService) ResolveExternal(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	m, err := s.cache.GetByTMDBID(ctx, tmdbID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	details, err := s.catalog.MovieDetails(ctx, tmdbID, false)
	if err != nil {
		return nil, apperr.NotFound("movie not found").WithCause(err)
	}

	minimal := NormalizeSummary(&details.Movie)
	minimal.LastUpdated = s.now()
	return s.cache.CreateIfAbsent(ctx, minimal)
}

// CachedByTMDBID looks up the cache only, with no provider fallback.
func (s *MovieService) CachedByTMDBID(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	return s.cache.GetByTMDBID(ctx, tmdbID)
}

// SetAggregate persists a movie's recomputed review aggregate.
func (s *MovieService) SetAggregate(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error {
	return s.cache.SetRating(ctx, id, rating, numReviews)
}

// cacheSummaries normalizes and upserts every record of a provider page and
// returns the normalized page. Upsert failures are logged, never surfaced:
// the caller gets the fresh data regardless.
func (s *MovieService) cacheSummaries(ctx context.Context, results []catalog.Movie) []models.Movie {
	now := s.now()
	fresh := make([]models.Movie, 0, len(results))
	for i := range results {
		m := NormalizeSummary(&results[i])
		m.LastUpdated = now
		if err := s.cache.UpsertSummary(ctx, m); err != nil {
			slog.Error("failed to cache movie", "tmdb_id", m.TMDBID, "error", err)
		}
		fresh = append(fresh, *m)
	}
	return fresh
}

// pageStale reports whether a cached page needs a refresh, judged by its
// most recently updated row.
func (s *MovieService) pageStale(movies []models.Movie) bool {
	newest := movies[0]
	for _, m := range movies[1:] {
		if m.LastUpdated.After(newest.LastUpdated) {
			newest = m
		}
	}
	return newest.NeedsUpdate(s.ttl)
}

// providerErr maps a catalog failure to the domain taxonomy.
func providerErr(err error) error {
	if catalog.IsNotFound(err) {
		return apperr.NotFound("movie not found in catalog").WithCause(err)
	}
	return apperr.Upstream("movie catalog is unavailable").WithCause(err)
}
