// Package catalog wraps the third-party movie catalog API (TMDB). Every
// call attaches the configured API key; provider failures surface as *Error
// values carrying the upstream status.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cinelog/shared/httpclient"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpclient.Default,
	}
}

// Trending fetches the current trending movies page.
func (c *Client) Trending(ctx context.Context) (*Page, error) {
	var page Page
	if err := c.get(ctx, "/trending/movie/day", map[string]string{"language": "en-US"}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Discover fetches a discovery or search page depending on whether a query
// is present.
func (c *Client) Discover(ctx context.Context, p DiscoverParams) (*Page, error) {
	endpoint := "/discover/movie"
	params := map[string]string{
		"language":      "en-US",
		"include_adult": "false",
		"page":          strconv.Itoa(max(p.Page, 1)),
	}

	if p.SortBy != "" {
		params["sort_by"] = p.SortBy
	} else {
		params["sort_by"] = SortPopularityDesc
	}
	if p.Year != "" {
		params["primary_release_year"] = p.Year
	}
	if p.Query != "" {
		endpoint = "/search/movie"
		params["query"] = p.Query
	}
	if p.GenreID != "" && p.GenreID != "all" {
		params["with_genres"] = p.GenreID
	}

	var page Page
	if err := c.get(ctx, endpoint, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MovieDetails fetches a single movie by its catalog id. When appendMedia is
// set, the videos and credits blocks are requested along with the record.
func (c *Client) MovieDetails(ctx context.Context, id int64, appendMedia bool) (*MovieDetails, error) {
	params := map[string]string{"language": "en-US"}
	if appendMedia {
		params["append_to_response"] = "videos,credits"
	}

	var details MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

type errorBody struct {
	StatusMessage string `json:"status_message"`
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("catalog API key is not set")
	}

	if params == nil {
		params = map[string]string{}
	}
	params["api_key"] = c.apiKey
	reqURL := httpclient.BuildQueryURL(c.baseURL+endpoint, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("catalog request", "endpoint", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &Error{Status: resp.StatusCode, Message: body.StatusMessage}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
