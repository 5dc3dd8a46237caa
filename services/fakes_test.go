package services

// In-memory fakes for the persistence and catalog interfaces. They mimic the
// store's observable behavior: unique keys, insert-or-update upserts, and
// apperr values for missing rows.

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"cinelog/apperr"
	"cinelog/catalog"
	"cinelog/models"
)

type fakeMovieCache struct {
	byTMDB        map[int64]*models.Movie
	upsertCount   int
	failUpserts   bool
	ratingUpdates int
}

func newFakeMovieCache() *fakeMovieCache {
	return &fakeMovieCache{byTMDB: map[int64]*models.Movie{}}
}

func (f *fakeMovieCache) GetByTMDBID(_ context.Context, tmdbID int64) (*models.Movie, error) {
	if m, ok := f.byTMDB[tmdbID]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, apperr.NotFoundf("movie %d not found", tmdbID)
}

func (f *fakeMovieCache) GetByID(_ context.Context, id uuid.UUID) (*models.Movie, error) {
	for _, m := range f.byTMDB {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperr.NotFoundf("movie %s not found", id)
}

func (f *fakeMovieCache) TopByPopularity(_ context.Context, limit, offset int) ([]models.Movie, error) {
	all := make([]models.Movie, 0, len(f.byTMDB))
	for _, m := range f.byTMDB {
		all = append(all, *m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Popularity > all[j].Popularity })
	if offset >= len(all) {
		return []models.Movie{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (f *fakeMovieCache) Count(_ context.Context) (int64, error) {
	return int64(len(f.byTMDB)), nil
}

func (f *fakeMovieCache) UpsertSummary(_ context.Context, m *models.Movie) error {
	f.upsertCount++
	if f.failUpserts {
		return fmt.Errorf("cache write failed")
	}
	if existing, ok := f.byTMDB[m.TMDBID]; ok {
		updated := *m
		updated.ID = existing.ID
		// detail-only fields survive a summary upsert
		updated.Genres = existing.Genres
		updated.Videos = existing.Videos
		updated.Credits = existing.Credits
		updated.Runtime = existing.Runtime
		updated.Tagline = existing.Tagline
		f.byTMDB[m.TMDBID] = &updated
		return nil
	}
	stored := *m
	stored.ID = uuid.New()
	f.byTMDB[m.TMDBID] = &stored
	return nil
}

func (f *fakeMovieCache) UpsertDetail(_ context.Context, m *models.Movie) error {
	f.upsertCount++
	if f.failUpserts {
		return fmt.Errorf("cache write failed")
	}
	stored := *m
	if existing, ok := f.byTMDB[m.TMDBID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = uuid.New()
	}
	f.byTMDB[m.TMDBID] = &stored
	return nil
}

func (f *fakeMovieCache) CreateIfAbsent(_ context.Context, m *models.Movie) (*models.Movie, error) {
	if existing, ok := f.byTMDB[m.TMDBID]; ok {
		copied := *existing
		return &copied, nil
	}
	stored := *m
	stored.ID = uuid.New()
	f.byTMDB[m.TMDBID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeMovieCache) SetRating(_ context.Context, id uuid.UUID, rating float64, numReviews int) error {
	f.ratingUpdates++
	for _, m := range f.byTMDB {
		if m.ID == id {
			m.Rating = &rating
			m.NumReviews = numReviews
			return nil
		}
	}
	return apperr.NotFoundf("movie %s not found", id)
}

type fakeCatalog struct {
	trendingPage  *catalog.Page
	discoverPage  *catalog.Page
	details       map[int64]*catalog.MovieDetails
	err           error
	trendingCalls int
	discoverCalls int
	detailCalls   int
	lastDiscover  catalog.DiscoverParams
}

func (f *fakeCatalog) Trending(_ context.Context) (*catalog.Page, error) {
	f.trendingCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.trendingPage, nil
}

func (f *fakeCatalog) Discover(_ context.Context, p catalog.DiscoverParams) (*catalog.Page, error) {
	f.discoverCalls++
	f.lastDiscover = p
	if f.err != nil {
		return nil, f.err
	}
	return f.discoverPage, nil
}

func (f *fakeCatalog) MovieDetails(_ context.Context, id int64, _ bool) (*catalog.MovieDetails, error) {
	f.detailCalls++
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return nil, &catalog.Error{Status: 404, Message: "The resource you requested could not be found."}
}

type listKey struct {
	userID int64
	list   models.ListName
	tmdbID int64
}

type fakeLists struct {
	items map[listKey]models.ListItem
	order []listKey
}

func newFakeLists() *fakeLists {
	return &fakeLists{items: map[listKey]models.ListItem{}}
}

func (f *fakeLists) Get(_ context.Context, userID int64, list models.ListName) ([]models.ListItem, error) {
	out := []models.ListItem{}
	for _, k := range f.order {
		if k.userID == userID && k.list == list {
			out = append(out, f.items[k])
		}
	}
	return out, nil
}

func (f *fakeLists) Exists(_ context.Context, userID int64, list models.ListName, tmdbID int64) (bool, error) {
	_, ok := f.items[listKey{userID, list, tmdbID}]
	return ok, nil
}

func (f *fakeLists) Add(_ context.Context, userID int64, list models.ListName, item models.ListItem) error {
	k := listKey{userID, list, item.TMDBID}
	if _, ok := f.items[k]; ok {
		return apperr.Conflict(fmt.Sprintf("movie already in %s", list))
	}
	f.items[k] = item
	f.order = append(f.order, k)
	return nil
}

func (f *fakeLists) Remove(_ context.Context, userID int64, list models.ListName, tmdbID int64) error {
	k := listKey{userID, list, tmdbID}
	if _, ok := f.items[k]; !ok {
		return apperr.NotFound(fmt.Sprintf("movie not found in %s", list))
	}
	delete(f.items, k)
	for i, o := range f.order {
		if o == k {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews map[int64]*models.Review
	likes   map[int64]map[int64]bool
	reports map[int64]map[int64]string
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews: map[int64]*models.Review{},
		likes:   map[int64]map[int64]bool{},
		reports: map[int64]map[int64]string{},
		nextID:  1,
	}
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id int64) (*models.Review, error) {
	if r, ok := f.reviews[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, apperr.NotFound("review not found")
}

func (f *fakeReviewRepo) ListByMovie(_ context.Context, movieID uuid.UUID) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByUser(_ context.Context, userID int64) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, r *models.Review) (*models.Review, error) {
	for _, existing := range f.reviews {
		if existing.MovieID == r.MovieID && existing.UserID == r.UserID {
			return nil, apperr.Conflict("you have already reviewed this movie")
		}
	}
	stored := *r
	stored.ID = f.nextID
	f.nextID++
	f.reviews[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, id int64, rating int, content string) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, apperr.NotFound("review not found")
	}
	r.Rating = rating
	r.Content = content
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return apperr.NotFound("review not found")
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) Exists(_ context.Context, movieID uuid.UUID, userID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.MovieID == movieID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) Aggregate(_ context.Context, movieID uuid.UUID) (float64, int, error) {
	sum, count := 0, 0
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeReviewRepo) ToggleLike(_ context.Context, reviewID, userID int64) (int, bool, error) {
	if f.likes[reviewID] == nil {
		f.likes[reviewID] = map[int64]bool{}
	}
	liked := !f.likes[reviewID][userID]
	if liked {
		f.likes[reviewID][userID] = true
	} else {
		delete(f.likes[reviewID], userID)
	}
	return len(f.likes[reviewID]), liked, nil
}

func (f *fakeReviewRepo) AddReport(_ context.Context, reviewID, userID int64, reason string) error {
	if f.reports[reviewID] == nil {
		f.reports[reviewID] = map[int64]string{}
	}
	if _, ok := f.reports[reviewID][userID]; ok {
		return apperr.Conflict("you have already reported this review")
	}
	f.reports[reviewID][userID] = reason
	r := f.reviews[reviewID]
	r.Reported = true
	r.ReportCount++
	return nil
}

func (f *fakeReviewRepo) ListAll(_ context.Context) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) ListReported(_ context.Context) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.Reported {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.reviews)), nil
}

func (f *fakeReviewRepo) CountReported(_ context.Context) (int64, error) {
	var n int64
	for _, r := range f.reviews {
		if r.Reported {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUserRepo) SetBanned(_ context.Context, id int64, banned bool) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.IsBanned = banned
			return nil
		}
	}
	return apperr.NotFound("user not found")
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, apperr.Conflict("email already in use")
	}
	u := &models.User{ID: f.nextID, Name: name, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.byEmail[email] = u
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, name, email string) (*models.User, error) {
	for old, u := range f.byEmail {
		if u.ID == id {
			u.Name = name
			if old != email {
				delete(f.byEmail, old)
				f.byEmail[email] = u
				u.Email = email
			}
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}
