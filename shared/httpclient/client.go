// Package httpclient holds shared helpers for outbound HTTP calls.
package httpclient

import (
	"net/http"
	"net/url"
	"time"
)

// Default is the shared client for provider calls.
var Default = &http.Client{
	Timeout: 15 * time.Second,
}

// BuildQueryURL appends query parameters to a base URL.
func BuildQueryURL(baseURL string, params map[string]string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
