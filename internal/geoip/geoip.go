// Package geoip resolves the runner's approximate location so the board can
// follow real day and night when no observer is configured.
package geoip

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/vinser/issuewalk/internal/ambilite"
)

const DefaultURL = "http://ip-api.com/json/"

// LocationInfo stores geographic data and timezone.
type LocationInfo struct {
	Country  string  `json:"country"`
	City     string  `json:"city"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
	IP       string  `json:"query"`
}

// Observer converts the location for ambilite.
func (l LocationInfo) Observer() ambilite.Observer {
	return ambilite.Observer{Lat: l.Lat, Lon: l.Lon, Timezone: l.Timezone}
}

var (
	ErrStatus     = eris.New("geoip: non-200 response from API")
	ErrNoTimezone = eris.New("geoip: timezone not provided")
)

// Client queries a geoip API and caches the answer for CacheTTL.
type Client struct {
	URL         string
	HTTPTimeout time.Duration
	CacheTTL    time.Duration

	mu        sync.Mutex
	cache     *LocationInfo
	cacheTime time.Time
}

func NewClient() *Client {
	return &Client{
		URL:         DefaultURL,
		HTTPTimeout: 5 * time.Second,
		CacheTTL:    time.Hour,
	}
}

// Locate returns the cached location if still fresh, otherwise asks the API.
func (c *Client) Locate(ctx context.Context) (*LocationInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil && time.Since(c.cacheTime) <= c.CacheTTL {
		return c.cache, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.HTTPTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geoip: building request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geoip: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatus
	}

	info := &LocationInfo{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, eris.Wrap(err, "geoip: decoding response")
	}
	if info.Timezone == "" {
		return nil, ErrNoTimezone
	}
	if _, err := time.LoadLocation(info.Timezone); err != nil {
		return nil, eris.Wrap(err, "geoip: bad timezone")
	}

	c.cache = info
	c.cacheTime = time.Now()
	return info, nil
}
