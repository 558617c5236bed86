package vehicle

// SearchRequest is the loosely-typed criteria shape shared by every entry
// point: the inventory route, the listings routes, the chat tool call and
// the websocket channel. All fields are optional; absence means "no
// constraint", never an implicit default filter.
type SearchRequest struct {
	Query       string   `json:"query,omitempty"`
	Make        string   `json:"make,omitempty"`
	Model       string   `json:"model,omitempty"`
	Type        string   `json:"type,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	PriceMin    *float64 `json:"priceMin,omitempty"`
	PriceMax    *float64 `json:"priceMax,omitempty"`
	Year        *int     `json:"year,omitempty"`
	YearMin     *int     `json:"yearMin,omitempty"`
	YearMax     *int     `json:"yearMax,omitempty"`
	MPGMin      *float64 `json:"mpgMin,omitempty"`
	MileageMax  *int     `json:"mileageMax,omitempty"`
	Features    []string `json:"features,omitempty"`
	Location    string   `json:"location,omitempty"`
	Zip         string   `json:"zip,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	RadiusMiles *float64 `json:"radiusMiles,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// SearchCriteria is the canonical, validated query produced by the
// normalizer and consumed by both the provider and the local filter stage.
type SearchCriteria struct {
	Query       string
	Make        string
	Model       string
	Type        string
	Condition   string
	PriceMin    *float64
	PriceMax    *float64
	Year        *int
	YearMin     *int
	YearMax     *int
	MPGMin      *float64
	MileageMax  *int
	Features    []string
	Location    string
	Zip         string
	Latitude    *float64
	Longitude   *float64
	RadiusMiles float64
	Limit       int
}

// HasCoordinates reports whether the criteria carry a resolved location.
// Radius filtering only applies once this is true.
func (c *SearchCriteria) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// AppliedFilters echoes the filters a search honored, for UI display.
type AppliedFilters struct {
	Make        string   `json:"make,omitempty"`
	Model       string   `json:"model,omitempty"`
	Type        string   `json:"type,omitempty"`
	PriceMin    *float64 `json:"priceMin,omitempty"`
	PriceMax    *float64 `json:"priceMax,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	RadiusMiles float64  `json:"radiusMiles,omitempty"`
}

// Search result sources.
const (
	SourceProvider = "provider"
	SourceOffline  = "offline"
)

// SearchResult is the uniform response every caller receives, even on total
// failure (empty vehicle list plus an explanatory message).
type SearchResult struct {
	Vehicles []Vehicle      `json:"vehicles"`
	Total    int            `json:"total"`
	Source   string         `json:"source"`
	Message  string         `json:"message"`
	Filters  AppliedFilters `json:"filters"`
	Error    bool           `json:"error,omitempty"`
}
