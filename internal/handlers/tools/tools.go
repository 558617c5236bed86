// internal/handlers/tools/tools.go
//
// Tool routes back the AI chat concierge. They return the raw shapes the
// chat client renders (no success/data envelope) so the conversational
// agent can consume them as tool-call results directly.
package tools

import (
	"net/http"

	aptdomain "motorscout-service/internal/domain/appointment"
	"motorscout-service/internal/domain/vehicle"
	xerrors "motorscout-service/internal/pkg/errors"
	aptservice "motorscout-service/internal/service/appointment"
	searchservice "motorscout-service/internal/service/search"

	"github.com/gin-gonic/gin"
)

// chatResultLimit keeps tool responses small enough for a chat context.
const chatResultLimit = 10

type ToolsHandler struct {
	searchService      *searchservice.SearchService
	appointmentService *aptservice.AppointmentService
}

func NewToolsHandler(searchService *searchservice.SearchService, appointmentService *aptservice.AppointmentService) *ToolsHandler {
	return &ToolsHandler{
		searchService:      searchService,
		appointmentService: appointmentService,
	}
}

// SearchInventory is the searchInventory tool call.
func (t *ToolsHandler) SearchInventory(c *gin.Context) {
	var req vehicle.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, vehicle.SearchResult{
			Vehicles: []vehicle.Vehicle{},
			Message:  "Invalid search criteria",
			Error:    true,
		})
		return
	}
	if req.Limit <= 0 || req.Limit > chatResultLimit {
		req.Limit = chatResultLimit
	}

	result, err := t.searchService.Search(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, vehicle.SearchResult{
			Vehicles: []vehicle.Vehicle{},
			Message:  xerrors.MessageOrDefault(err, "Invalid search criteria"),
			Error:    true,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckAvailability is the checkAvailability tool call.
func (t *ToolsHandler) CheckAvailability(c *gin.Context) {
	var req aptdomain.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle ID and date are required"})
		return
	}

	res, err := t.appointmentService.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": xerrors.MessageOrDefault(err, "Vehicle ID and date are required")})
		return
	}

	c.JSON(http.StatusOK, res)
}

// ScheduleAppointment is the scheduleAppointment tool call.
func (t *ToolsHandler) ScheduleAppointment(c *gin.Context) {
	var req aptdomain.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, aptdomain.ScheduleResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  []string{"request body is not valid JSON"},
		})
		return
	}

	res := t.appointmentService.Schedule(c.Request.Context(), req)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}

	c.JSON(http.StatusOK, res)
}
