package urdf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/specialistvlad/ldgraph/internal/ctxlog"
)

// Endpoint paths relative to the base URL.
const (
	PathZURL     = "/urdf/zurl"
	PathLoadFile = "/urdf/loadFile"
)

// ErrNoBaseURL is returned when the client has no runtime to talk to.
var ErrNoBaseURL = errors.New("no URDF base URL configured")

// ErrFormat marks a response body that is not what the endpoint promises.
var ErrFormat = errors.New("unexpected URDF response format")

// StatusError is a non-2xx answer from the runtime.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s failed (HTTP %d): %s", e.Method, e.URL, e.Code, e.Body)
}

// Options tune the client. Zero values pick defaults.
type Options struct {
	FetchTimeout  time.Duration
	UploadTimeout time.Duration
	HTTPClient    *http.Client
	Breaker       BreakerConfig
	// Logger receives breaker state changes. Defaults to slog.Default().
	Logger        *slog.Logger
}

// Client is safe for concurrent use.
type Client struct {
	base    string
	opts    Options
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient returns a client for the runtime at baseURL. Trailing slashes are
// ignored. An empty baseURL yields a client whose calls fail with ErrNoBaseURL.
func NewClient(baseURL string, opts Options) *Client {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 30 * time.Second
	}
	if opts.UploadTimeout <= 0 {
		opts.UploadTimeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		base:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		opts:    opts,
		http:    httpClient,
		breaker: newBreaker(opts.Breaker, opts.Logger),
	}
}

// BaseURL returns the normalized base URL, possibly empty.
func (c *Client) BaseURL() string {
	return c.base
}

// Enabled reports whether a base URL is configured.
func (c *Client) Enabled() bool {
	return c.base != ""
}

// FetchZURL downloads the compaction list.
func (c *Client) FetchZURL(ctx context.Context) ([]string, error) {
	if !c.Enabled() {
		return nil, ErrNoBaseURL
	}
	url := c.base + PathZURL
	logger := ctxlog.FromContext(ctx).With("url", url)
	logger.Debug("Fetching compaction list.")

	ctx, cancel := context.WithTimeout(ctx, c.opts.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON returned by %s: %v (body: %s)", ErrFormat, url, err, truncate(body, 500))
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s did not return a JSON array of strings", ErrFormat, url)
	}
	iris := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s did not return a JSON array of strings (element %d)", ErrFormat, url, i)
		}
		iris[i] = s
	}

	logger.Debug("Compaction list fetched.", "count", len(iris))
	return iris, nil
}

// Upload posts a dataset for ingestion and returns the response body.
func (c *Client) Upload(ctx context.Context, dataset json.RawMessage) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrNoBaseURL
	}
	url := c.base + PathLoadFile

	payload, err := json.Marshal(struct {
		Doc json.RawMessage `json:"doc"`
	}{Doc: dataset})
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.UploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// do runs req through the breaker and returns the body of a 2xx response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	out, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s failed: %w", req.Method, req.URL, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{Method: req.Method, URL: req.URL.String(), Code: resp.StatusCode, Body: string(body)}
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
