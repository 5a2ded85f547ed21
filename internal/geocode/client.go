// Package geocode resolves postal addresses to coordinates through a
// Kakao-compatible address search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/luggio/console/internal/domain"
	"github.com/luggio/console/internal/workflow"
)

// Client calls the address search endpoint and caches resolved
// coordinates for a bounded time. Addresses are immutable enough that a
// short TTL removes nearly all repeat lookups during a form session.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	mu    sync.Mutex
	ttl   time.Duration
	cache map[string]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	point   workflow.Point
	expires time.Time
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheTTL sets how long resolved addresses are reused. Zero
// disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kakao address search response, reduced to the fields we read.
type searchResponse struct {
	Documents []struct {
		X string `json:"x"` // longitude
		Y string `json:"y"` // latitude
	} `json:"documents"`
}

// Resolve returns the coordinates for address. An address the upstream
// service does not know yields a domain unresolvable error, never a
// zero coordinate pair.
func (c *Client) Resolve(ctx context.Context, address string) (workflow.Point, error) {
	if p, ok := c.cached(address); ok {
		return p, nil
	}

	u, err := url.Parse(c.baseURL + "/v2/local/search/address.json")
	if err != nil {
		return workflow.Point{}, err
	}
	q := u.Query()
	q.Set("query", address)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return workflow.Point{}, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return workflow.Point{}, fmt.Errorf("geocoder request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return workflow.Point{}, fmt.Errorf("geocoder: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return workflow.Point{}, fmt.Errorf("geocoder response: %w", err)
	}

	if len(out.Documents) == 0 {
		return workflow.Point{}, domain.NewAppError(domain.CodeUnresolvable,
			"address could not be resolved", fmt.Errorf("no match for %q", address))
	}

	doc := out.Documents[0]
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return workflow.Point{}, fmt.Errorf("geocoder latitude %q: %w", doc.Y, err)
	}
	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return workflow.Point{}, fmt.Errorf("geocoder longitude %q: %w", doc.X, err)
	}

	p := workflow.Point{Lat: lat, Lng: lng}
	c.store(address, p)
	return p, nil
}

func (c *Client) cached(address string) (workflow.Point, bool) {
	if c.ttl <= 0 {
		return workflow.Point{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.cache[address]
	if !ok || c.now().After(e.expires) {
		delete(c.cache, address)
		return workflow.Point{}, false
	}
	return e.point, true
}

func (c *Client) store(address string, p workflow.Point) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.cache[address] = cacheEntry{point: p, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
