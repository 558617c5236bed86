package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Geocoder resolves free-text locations (city/state, address, postal code)
// to coordinates. Implementations fail soft: a lookup that cannot be
// completed reports ok=false rather than an error, because callers treat an
// unresolved location as "search without a radius", not as a failure.
type Geocoder interface {
	Resolve(ctx context.Context, location string) (Point, bool)
}

// NominatimGeocoder resolves locations against the public Nominatim search
// endpoint. Nominatim's usage policy requires a distinguishing User-Agent,
// so the client identifier is mandatory. Each call is independent: no cache,
// no retry.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *zap.Logger
}

func NewNominatimGeocoder(baseURL, userAgent string, logger *zap.Logger) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

// WithHTTPClient overrides the HTTP client, used by tests.
func (g *NominatimGeocoder) WithHTTPClient(c *http.Client) *NominatimGeocoder {
	g.client = c
	return g
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve takes the first match returned by Nominatim. Network failures,
// non-200 responses and empty result arrays all report ok=false.
func (g *NominatimGeocoder) Resolve(ctx context.Context, location string) (Point, bool) {
	if location == "" {
		return Point{}, false
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Point{}, false
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geocode request failed", zap.String("location", location), zap.Error(err))
		return Point{}, false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		g.logger.Warn("geocode non-200 response",
			zap.String("location", location),
			zap.Int("status", res.StatusCode),
		)
		return Point{}, false
	}

	var results []nominatimResult
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		g.logger.Warn("geocode decode failed", zap.String("location", location), zap.Error(err))
		return Point{}, false
	}
	if len(results) == 0 {
		return Point{}, false
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return Point{}, false
	}

	return Point{Latitude: lat, Longitude: lon}, true
}
