// internal/handlers/appointment/appointment.go
package appointment

import (
	"net/http"

	xerrors "motorscout-service/internal/pkg/errors"
	"motorscout-service/internal/pkg/response"
	service "motorscout-service/internal/service/appointment"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ListDealerships returns the dealership directory.
func (h *AppointmentHandler) ListDealerships(c *gin.Context) {
	dealerships := h.appointmentService.Dealerships(c.Request.Context())
	response.Success(c, http.StatusOK, "dealerships retrieved", dealerships)
}

// GetAppointment looks up a booking by confirmation number.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	apt, err := h.appointmentService.ByConfirmation(c.Request.Context(), c.Param("confirmation"))
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "appointment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load appointment", err)
		return
	}

	response.Success(c, http.StatusOK, "appointment retrieved", apt)
}
