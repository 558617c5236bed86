// internal/handlers/listings/listings.go
package listings

import (
	"net/http"
	"strconv"

	"motorscout-service/internal/domain/vehicle"
	"motorscout-service/internal/pkg/response"
	service "motorscout-service/internal/service/search"

	"github.com/gin-gonic/gin"
)

const probeLimit = 15

type ListingsHandler struct {
	searchService *service.SearchService
}

func NewListingsHandler(searchService *service.SearchService) *ListingsHandler {
	return &ListingsHandler{searchService: searchService}
}

// Search is the direct listings entry point, returning the full result set
// up to the provider row cap.
func (h *ListingsHandler) Search(c *gin.Context) {
	var req vehicle.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid listings request", err)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		response.ValidationError(c, "invalid search criteria", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// vehicleSample is the trimmed projection the probe endpoint returns.
type vehicleSample struct {
	ID         string  `json:"id"`
	Year       int     `json:"year"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Price      float64 `json:"price"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	Zip        string  `json:"zip,omitempty"`
	DealerName string  `json:"dealerName,omitempty"`
}

// Probe is the admin connectivity tester: query-param criteria, small
// limit, a sample of at most five summarized vehicles.
func (h *ListingsHandler) Probe(c *gin.Context) {
	req := vehicle.SearchRequest{
		Make:     c.Query("make"),
		Model:    c.Query("model"),
		Location: c.Query("location"),
		Zip:      c.Query("zip"),
		Limit:    probeLimit,
	}

	if v := c.Query("priceMin"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.ValidationError(c, "priceMin must be a number", err)
			return
		}
		req.PriceMin = &n
	}
	if v := c.Query("priceMax"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.ValidationError(c, "priceMax must be a number", err)
			return
		}
		req.PriceMax = &n
	}
	if v := c.Query("radiusMiles"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			response.ValidationError(c, "radiusMiles must be a number", err)
			return
		}
		req.RadiusMiles = &n
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		response.ValidationError(c, "invalid search criteria", err)
		return
	}

	sample := make([]vehicleSample, 0, 5)
	for i, v := range result.Vehicles {
		if i == 5 {
			break
		}
		sample = append(sample, vehicleSample{
			ID: v.ID, Year: v.Year, Make: v.Make, Model: v.Model,
			Price: v.Price, City: v.City, State: v.State, Zip: v.Zip,
			DealerName: v.DealerName,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     !result.Error,
		"total":  result.Total,
		"source": result.Source,
		"sample": sample,
	})
}
