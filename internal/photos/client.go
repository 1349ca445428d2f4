package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"roverdeck/internal/nasa"
	"roverdeck/internal/state"
)

// ErrInvalidResponse reports a proxy body that lacked the expected photos
// array. The proxy's in-body error shape decodes to exactly this condition.
var ErrInvalidResponse = errors.New("proxy responded with invalid data")

// Fetcher is the interface the dashboard consumes; *Client implements it.
type Fetcher interface {
	FetchLatest(ctx context.Context, slug string) (Result, error)
}

var _ Fetcher = (*Client)(nil)

// Result pairs the images and attributes derived from one fetch response.
// Keeping them in one value is what guarantees the view never mixes two
// rovers' data.
type Result struct {
	Images     []string
	Attributes state.Attributes
}

// Client talks to the roverproxy HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerAddr = "127.0.0.1:3000"
	defaultUserAgent  = "roverdeck/0.1"
	requestTimeout    = 60 * time.Second
)

// NewClient builds a Client using the provided host:port or URL value.
func NewClient(serverAddr string) (*Client, error) {
	base, err := parseBaseURL(serverAddr)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchLatest retrieves the latest photo payload for the rover slug and
// derives the images and attributes the dashboard displays. The order of the
// photos in the payload is preserved in Result.Images.
func (c *Client) FetchLatest(ctx context.Context, slug string) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + strings.TrimPrefix(slug, "#")}
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	var payload nasa.PhotoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Photos) == 0 {
		// Covers both the proxy's {"error": ...} shape and an empty or
		// missing photos array; either way there is nothing to display.
		return Result{}, fmt.Errorf("photos for %s: %w", slug, ErrInvalidResponse)
	}

	first := payload.Photos[0]
	images := make([]string, len(payload.Photos))
	for i, photo := range payload.Photos {
		images[i] = photo.ImgSrc
	}
	return Result{
		Images: images,
		Attributes: state.Attributes{
			Name:        first.Rover.Name,
			LaunchDate:  first.Rover.LaunchDate,
			LandingDate: first.Rover.LandingDate,
			EarthDate:   first.EarthDate,
			Status:      first.Rover.Status,
		},
	}, nil
}

func parseBaseURL(serverAddr string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverAddr)
	if trimmed == "" {
		trimmed = defaultServerAddr
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server_addr %q: %w", serverAddr, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
