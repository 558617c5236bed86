// internal/handlers/geocode/geocode.go
package geocode

import (
	"net/http"

	"motorscout-service/internal/pkg/geo"
	"motorscout-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type GeocodeHandler struct {
	geocoder geo.Geocoder
}

func NewGeocodeHandler(geocoder geo.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

type geocodeRequest struct {
	Address string `json:"address" binding:"required"`
}

// Resolve turns a free-text address into coordinates. No result is a 404,
// not an error payload; map widgets treat it as "nothing to center on".
func (h *GeocodeHandler) Resolve(c *gin.Context) {
	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "address required", err)
		return
	}

	pt, ok := h.geocoder.Resolve(c.Request.Context(), req.Address)
	if !ok {
		response.NotFound(c, "no results")
		return
	}

	c.JSON(http.StatusOK, pt)
}
