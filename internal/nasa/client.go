package nasa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// ErrUpstreamInvalid reports an upstream body that decoded but lacked the
// field the two-phase lookup depends on.
var ErrUpstreamInvalid = errors.New("upstream responded with invalid data")

// DefaultBaseURL is the production Mars Photos API root.
const DefaultBaseURL = "https://api.nasa.gov/mars-photos/api/v1"

const (
	defaultUserAgent = "roverproxy/0.1"
	requestTimeout   = 30 * time.Second
)

// Client talks to the upstream Mars Photos API. Every request carries the
// api_key query parameter sourced from server configuration.
type Client struct {
	baseURL   string
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given API root. An empty baseURL selects
// the production API. The key may be empty; upstream auth then fails and the
// caller surfaces its single generic error shape.
func NewClient(baseURL, apiKey string) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	return &Client{
		baseURL: trimmed,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
}

// FetchManifest retrieves the rover's photo manifest and returns the latest
// date for which photo data exists.
func (c *Client) FetchManifest(ctx context.Context, slug string) (string, error) {
	body, err := c.get(ctx, c.withAPIKey(c.baseURL+"/manifests/"+slug))
	if err != nil {
		return "", err
	}
	var payload ManifestResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode manifest: %w", err)
	}
	if payload.PhotoManifest == nil || payload.PhotoManifest.MaxDate == "" {
		return "", fmt.Errorf("manifest for %s: %w", slug, ErrUpstreamInvalid)
	}
	return payload.PhotoManifest.MaxDate, nil
}

// FetchPhotos retrieves the rover's photos for the given earth date. The raw
// body is returned alongside the decoded payload so the proxy can pass it
// through verbatim.
func (c *Client) FetchPhotos(ctx context.Context, slug, date string) ([]byte, *PhotoPayload, error) {
	body, err := c.get(ctx, c.withAPIKey(c.baseURL+"/rovers/"+slug+"/photos?earth_date="+date))
	if err != nil {
		return nil, nil, err
	}
	var payload PhotoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, fmt.Errorf("decode photos: %w", err)
	}
	if payload.Photos == nil {
		return nil, nil, fmt.Errorf("photos for %s on %s: %w", slug, date, ErrUpstreamInvalid)
	}
	return body, &payload, nil
}

// withAPIKey appends the api_key parameter, using & when the URL already has
// a query string and ? otherwise.
func (c *Client) withAPIKey(rawURL string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "api_key=" + c.apiKey
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
