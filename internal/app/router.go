// internal/app/router.go
package app

import (
	appointmentHandler "motorscout-service/internal/handlers/appointment"
	geocodeHandler "motorscout-service/internal/handlers/geocode"
	inventoryHandler "motorscout-service/internal/handlers/inventory"
	listingsHandler "motorscout-service/internal/handlers/listings"
	toolsHandler "motorscout-service/internal/handlers/tools"
	"motorscout-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	InventoryHandler   *inventoryHandler.InventoryHandler
	ListingsHandler    *listingsHandler.ListingsHandler
	GeocodeHandler     *geocodeHandler.GeocodeHandler
	ToolsHandler       *toolsHandler.ToolsHandler
	AppointmentHandler *appointmentHandler.AppointmentHandler
	ChatHandler        *websocket.ChatHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket Chat Channel ====================
	r.GET("/ws/chat", h.ChatHandler.HandleConnection)

	// ==================== Inventory ====================
	inventory := api.Group("/inventory")
	{
		inventory.POST("/search", h.InventoryHandler.Search)
		inventory.GET("/vehicles/:id", h.InventoryHandler.GetVehicle)
	}

	// ==================== Listings ====================
	listings := api.Group("/listings")
	{
		listings.GET("", h.ListingsHandler.Probe)
		listings.POST("/search", h.ListingsHandler.Search)
	}

	// ==================== Geocoding ====================
	api.POST("/geocode", h.GeocodeHandler.Resolve)

	// ==================== Chat Tool Calls ====================
	tools := api.Group("/tools")
	{
		tools.POST("/search-inventory", h.ToolsHandler.SearchInventory)
		tools.POST("/check-availability", h.ToolsHandler.CheckAvailability)
		tools.POST("/schedule-appointment", h.ToolsHandler.ScheduleAppointment)
	}

	// ==================== Dealerships & Appointments ====================
	api.GET("/dealerships", h.AppointmentHandler.ListDealerships)
	api.GET("/appointments/:confirmation", h.AppointmentHandler.GetAppointment)
}
