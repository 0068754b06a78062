package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"postsearch/internal/domain"
)

// TotalCountHeader carries the full match count across all pages
const TotalCountHeader = "X-Total-Count"

// DefaultBaseURL is the resource searched when nothing else is configured
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/posts"

// searchParams is encoded into the request query string
type searchParams struct {
	Q     string `url:"q"`
	Page  int    `url:"_page"`
	Limit int    `url:"_limit"`
}

// Client performs paged searches against a REST resource
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a whole-request timeout; zero keeps the transport default
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the resource at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resource being searched
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search fetches one page of items matching q
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.Page, error) {
	reqURL, err := c.buildURL(q)
	if err != nil {
		return domain.Page{}, err
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	slog.Debug("search request", "request_id", requestID, "url", reqURL)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("search request failed", "request_id", requestID, "err", err)
		return domain.Page{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		slog.Warn("search returned non-success status", "request_id", requestID, "status", resp.StatusCode)
		return domain.Page{}, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var items []domain.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		slog.Warn("search response could not be decoded", "request_id", requestID, "err", err)
		return domain.Page{}, &DecodeError{Err: err}
	}

	page := domain.Page{Items: items}
	page.TotalCount, page.TotalKnown = parseTotalCount(resp.Header.Get(TotalCountHeader))

	slog.Debug("search response",
		"request_id", requestID,
		"items", len(items),
		"total", page.TotalCount,
		"total_known", page.TotalKnown,
		"elapsed", time.Since(start))

	return page, nil
}

func (c *Client) buildURL(q domain.Query) (string, error) {
	params, err := query.Values(searchParams{Q: q.Text, Page: q.Page, Limit: q.Limit})
	if err != nil {
		return "", fmt.Errorf("failed to encode query: %w", err)
	}

	u := *c.baseURL
	values := u.Query()
	for key, vals := range params {
		values[key] = vals
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// parseTotalCount reads the total-count header; ok is false if it is missing or invalid
func parseTotalCount(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
