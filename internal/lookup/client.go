package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokesearch/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	ResourcePath   = "/api/Pokemon/name/"
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outgoing lookups per second. Zero disables throttling.
	RateLimit float64
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client looks up catalog entries by name. Each call issues exactly one GET;
// there are no retries and nothing is cached.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(opts Options) (*Client, error) {
	base, err := ParseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// ParseBaseURL checks that raw is an absolute http(s) URL and returns it
// without a trailing slash.
func ParseBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: got %q", ErrInvalidBaseURL, raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// Endpoint returns the lookup URL for name. The name is path-escaped but
// otherwise used as given.
func (c *Client) Endpoint(name string) string {
	return c.baseURL + ResourcePath + url.PathEscape(name)
}

// FetchByName returns the entry for name, ErrNotFound when the catalog has
// none, or a *TransportError / *ProtocolError.
func (c *Client) FetchByName(ctx context.Context, name string) (Result, error) {
	reqID := uuid.NewString()
	endpoint := c.Endpoint(name)

	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("lookup %s: GET %s", reqID, endpoint)
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("lookup %s: transport failure after %s: %v", reqID, time.Since(started), err)
		return Result{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	logger.Debug("lookup %s: %s in %s", reqID, resp.Status, time.Since(started))

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) (Result, error) {
	if resp.StatusCode == http.StatusNotFound {
		return Result{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, statusError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return Result{}, &ProtocolError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("response body exceeds %d bytes", maxBodyBytes),
		}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return Result{}, ErrNotFound
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, bodyError(resp.StatusCode, "malformed response body: %v", err)
	}
	if err := result.Validate(); err != nil {
		return Result{}, bodyError(resp.StatusCode, "incomplete response body: %v", err)
	}
	return result, nil
}
