// Package skyapi is the transport-level client for the Sky Scrapper flight
// data API. It knows nothing about fallbacks or normalization; callers get
// the decoded body or a typed error and decide what to do with it.
package skyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/skysearch/internal/ratelimit"
)

const (
	// PlaceholderKey is what ships in the sample .env; a key equal to it is
	// treated the same as no key at all.
	PlaceholderKey = "YOUR_RAPIDAPI_KEY"

	DefaultBaseURL = "https://sky-scrapper.p.rapidapi.com"
	DefaultAPIHost = "sky-scrapper.p.rapidapi.com"

	EndpointSearchAirport  = "/api/v1/flights/searchAirport"
	EndpointNearbyAirports = "/api/v1/flights/getNearByAirports"
	EndpointSearchFlights  = "/api/v1/flights/search"
)

type Config struct {
	BaseURL    string
	APIKey     string
	APIHost    string
	HTTPClient *http.Client
	Limiter    *ratelimit.EndpointLimiter
	Logger     zerolog.Logger
}

type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
	limiter *ratelimit.EndpointLimiter
	log     zerolog.Logger
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIHost == "" {
		cfg.APIHost = DefaultAPIHost
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.Limiter == nil {
		cfg.Limiter = ratelimit.NewEndpointLimiterWithDefaults()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
		client:  cfg.HTTPClient,
		limiter: cfg.Limiter,
		log:     cfg.Logger,
	}
}

// Configured reports whether a usable API key is present. Its negation is
// the signal for running the whole pipeline on generated data.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != PlaceholderKey
}

// StatusError is a non-2xx response from the remote API.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("skyapi: %s returned status %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsRateLimited reports whether err is a remote 429 response.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.RateLimited()
}

// SearchAirports looks up airports matching a free-text query and returns
// the decoded response body.
func (c *Client) SearchAirports(ctx context.Context, query string) (map[string]any, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("locale", "en-US")
	return c.get(ctx, EndpointSearchAirport, params)
}

// NearbyAirports returns airports close to the given coordinates, used to
// seed a default origin from device location.
func (c *Client) NearbyAirports(ctx context.Context, lat, lng float64) (map[string]any, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("locale", "en-US")
	return c.get(ctx, EndpointNearbyAirports, params)
}

type FlightSearchRequest struct {
	Origin      string
	Destination string
	Date        string
	Adults      int
	CabinClass  string
}

// SearchFlights runs the remote one-way flight search between two resolved
// airport codes.
func (c *Client) SearchFlights(ctx context.Context, req FlightSearchRequest) (map[string]any, error) {
	if req.Adults <= 0 {
		req.Adults = 1
	}
	if req.CabinClass == "" {
		req.CabinClass = "economy"
	}

	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", req.Destination)
	params.Set("date", req.Date)
	params.Set("adults", strconv.Itoa(req.Adults))
	params.Set("cabinClass", req.CabinClass)
	params.Set("currency", "USD")
	params.Set("locale", "en-US")
	return c.get(ctx, EndpointSearchFlights, params)
}

// get performs a single attempt against one endpoint. Retrying is the
// caller's business; the static-table and mock-data fallbacks are the
// retry equivalents in this system.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	if err := c.limiter.Wait(ctx, endpoint); err != nil {
		return nil, err
	}
	c.log.Debug().Str("endpoint", endpoint).Msg("remote request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("skyapi: decoding %s response: %w", endpoint, err)
	}
	return body, nil
}
