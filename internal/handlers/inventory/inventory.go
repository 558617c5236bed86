// internal/handlers/inventory/inventory.go
package inventory

import (
	"net/http"

	"motorscout-service/internal/domain/vehicle"
	xerrors "motorscout-service/internal/pkg/errors"
	"motorscout-service/internal/pkg/response"
	service "motorscout-service/internal/service/search"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	searchService *service.SearchService
}

func NewInventoryHandler(searchService *service.SearchService) *InventoryHandler {
	return &InventoryHandler{searchService: searchService}
}

// Search runs the canonical inventory search.
func (h *InventoryHandler) Search(c *gin.Context) {
	var req vehicle.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid search request", err)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		response.ValidationError(c, "invalid search criteria", err)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}

// GetVehicle retrieves a single vehicle by ID.
func (h *InventoryHandler) GetVehicle(c *gin.Context) {
	v, err := h.searchService.VehicleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle retrieved", v)
}
