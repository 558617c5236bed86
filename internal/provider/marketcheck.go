package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"motorscout-service/internal/domain/vehicle"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const defaultRows = 50

// MarketCheckProvider queries the MarketCheck active-car search API and maps
// its vendor payload (nested build/dealer/media objects) into canonical
// Vehicle records. Any failure (network, non-2xx, malformed body) yields
// an empty Result, never an error that propagates to callers.
type MarketCheckProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewMarketCheckProvider(baseURL, apiKey string, logger *zap.Logger) *MarketCheckProvider {
	return &MarketCheckProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// WithHTTPClient overrides the HTTP client, used by tests.
func (p *MarketCheckProvider) WithHTTPClient(c *http.Client) *MarketCheckProvider {
	p.client = c
	return p
}

func (p *MarketCheckProvider) Name() string { return "marketcheck" }

type mcResponse struct {
	NumFound *int        `json:"num_found"`
	Listings []mcListing `json:"listings"`
}

type mcListing struct {
	ID            json.RawMessage `json:"id"`
	VIN           string          `json:"vin"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          json.RawMessage `json:"year"`
	Price         json.RawMessage `json:"price"`
	AskingPrice   json.RawMessage `json:"asking_price"`
	MSRP          json.RawMessage `json:"msrp"`
	RefPrice      json.RawMessage `json:"ref_price"`
	BodyType      string          `json:"body_type"`
	ImageURL      string          `json:"image_url"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	Zip           string          `json:"zip"`
	Miles         json.RawMessage `json:"miles"`
	Transmission  string          `json:"transmission"`
	Drivetrain    string          `json:"drivetrain"`
	Engine        string          `json:"engine"`
	InventoryType string          `json:"inventory_type"`
	SellerType    string          `json:"seller_type"`

	Build struct {
		Make     string          `json:"make"`
		Model    string          `json:"model"`
		Year     json.RawMessage `json:"year"`
		BodyType string          `json:"body_type"`
	} `json:"build"`

	Dealer struct {
		ID        json.RawMessage `json:"id"`
		Name      string          `json:"name"`
		City      string          `json:"city"`
		State     string          `json:"state"`
		Zip       string          `json:"zip"`
		Latitude  json.RawMessage `json:"latitude"`
		Longitude json.RawMessage `json:"longitude"`
	} `json:"dealer"`

	Media struct {
		PhotoLinks []string `json:"photo_links"`
	} `json:"media"`

	Extra struct {
		Options []string `json:"options"`
	} `json:"extra"`
}

// Search issues one GET against /v2/search/car/active with the criteria
// translated to MarketCheck query parameters.
func (p *MarketCheckProvider) Search(ctx context.Context, criteria vehicle.SearchCriteria) (Result, error) {
	q := url.Values{}
	q.Set("api_key", p.apiKey)

	rows := criteria.Limit
	if rows <= 0 {
		rows = defaultRows
	}
	q.Set("rows", strconv.Itoa(rows))

	if criteria.Make != "" {
		q.Set("make", criteria.Make)
	}
	if criteria.Model != "" {
		q.Set("model", criteria.Model)
	}
	if criteria.YearMin != nil || criteria.YearMax != nil {
		q.Set("year_range", rangeParam(intOrEmpty(criteria.YearMin), intOrEmpty(criteria.YearMax)))
	} else if criteria.Year != nil {
		q.Set("year", strconv.Itoa(*criteria.Year))
	}
	if criteria.HasCoordinates() {
		q.Set("latitude", strconv.FormatFloat(*criteria.Latitude, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(*criteria.Longitude, 'f', -1, 64))
		if criteria.RadiusMiles > 0 {
			q.Set("radius", strconv.FormatFloat(criteria.RadiusMiles, 'f', -1, 64))
		}
	}
	if criteria.Zip != "" {
		q.Set("zip", criteria.Zip)
		if criteria.RadiusMiles > 0 {
			q.Set("radius", strconv.FormatFloat(criteria.RadiusMiles, 'f', -1, 64))
		}
	}
	if criteria.PriceMin != nil || criteria.PriceMax != nil {
		q.Set("price_range", rangeParam(floatOrEmpty(criteria.PriceMin), floatOrEmpty(criteria.PriceMax)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v2/search/car/active?"+q.Encode(), nil)
	if err != nil {
		return Result{}, nil
	}
	req.Header.Set("Accept", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("marketcheck request failed", zap.Error(err))
		return Result{}, nil
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		p.logger.Error("marketcheck non-2xx response", zap.Int("status", res.StatusCode))
		return Result{}, nil
	}

	var body mcResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		p.logger.Error("marketcheck decode failed", zap.Error(err))
		return Result{}, nil
	}

	vehicles := make([]vehicle.Vehicle, 0, len(body.Listings))
	for _, it := range body.Listings {
		vehicles = append(vehicles, p.mapListing(it))
	}

	total := len(vehicles)
	if body.NumFound != nil {
		total = *body.NumFound
	}

	return Result{Vehicles: vehicles, Total: total}, nil
}

func (p *MarketCheckProvider) mapListing(it mcListing) vehicle.Vehicle {
	v := vehicle.Vehicle{
		ID:           rawString(it.ID),
		Make:         firstNonEmpty(it.Build.Make, it.Make, "Unknown"),
		Model:        firstNonEmpty(it.Build.Model, it.Model, "Unknown"),
		Type:         vehicle.BodyType(firstNonEmpty(it.BodyType, it.Build.BodyType, string(vehicle.BodySedan))),
		DealerName:   it.Dealer.Name,
		DealerID:     rawString(it.Dealer.ID),
		City:         firstNonEmpty(it.Dealer.City, it.City),
		State:        firstNonEmpty(it.Dealer.State, it.State),
		Zip:          firstNonEmpty(it.Dealer.Zip, it.Zip),
		Features:     it.Extra.Options,
		Available:    true,
		Stock:        1,
		VIN:          it.VIN,
		Transmission: vehicle.Transmission(it.Transmission),
		Drivetrain:   vehicle.Drivetrain(it.Drivetrain),
		Engine:       it.Engine,
		Condition:    vehicle.Condition(firstNonEmpty(it.InventoryType, it.SellerType, string(vehicle.ConditionUsed))),
	}

	if v.ID == "" {
		v.ID = it.VIN
	}
	if v.ID == "" {
		// ulid.Make uses the package's locked entropy source; one provider
		// instance serves concurrent requests.
		v.ID = ulid.Make().String()
	}
	if v.Features == nil {
		v.Features = []string{}
	}

	if year, ok := rawFloat(it.Build.Year); ok {
		v.Year = int(year)
	} else if year, ok := rawFloat(it.Year); ok {
		v.Year = int(year)
	}

	// First positive finite number in priority order wins; 0 otherwise.
	v.Price = firstPositive(it.Price, it.AskingPrice, it.MSRP, it.RefPrice)

	if len(it.Media.PhotoLinks) > 0 {
		v.Image = it.Media.PhotoLinks[0]
	} else if it.ImageURL != "" {
		v.Image = it.ImageURL
	} else {
		v.Image = "/placeholder.svg"
	}

	if lat, ok := rawFloat(it.Dealer.Latitude); ok {
		if lon, ok := rawFloat(it.Dealer.Longitude); ok {
			v.Latitude = &lat
			v.Longitude = &lon
		}
	}

	if m, ok := rawFloat(it.Miles); ok {
		mi := int(m)
		v.Mileage = &mi
	}

	return v
}

func firstPositive(candidates ...json.RawMessage) float64 {
	for _, c := range candidates {
		if n, ok := rawFloat(c); ok && n > 0 && !math.IsInf(n, 0) {
			return n
		}
	}
	return 0
}

// rawFloat reads a JSON value that vendors serve as either a number or a
// numeric string.
func rawFloat(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// rawString reads a JSON value that vendors serve as either a string or a
// number.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if n, ok := rawFloat(raw); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func rangeParam(min, max string) string {
	return fmt.Sprintf("%s-%s", min, max)
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
