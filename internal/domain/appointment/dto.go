package appointment

import "motorscout-service/internal/domain/vehicle"

// AvailabilityRequest asks whether a vehicle can be test driven on a date.
type AvailabilityRequest struct {
	VehicleID    string `json:"vehicleId"`
	Date         string `json:"date"`
	Time         string `json:"time,omitempty"`
	DealershipID string `json:"dealershipId,omitempty"`
}

// AvailabilityResponse mirrors what the chat client renders: candidate
// slots, the dealerships offering them and a human-readable message.
type AvailabilityResponse struct {
	Available   bool             `json:"available"`
	Vehicle     *vehicle.Vehicle `json:"vehicle,omitempty"`
	Slots       []TimeSlot       `json:"slots"`
	Dealerships []Dealership     `json:"dealerships"`
	Message     string           `json:"message,omitempty"`
}

// ScheduleRequest books an appointment.
type ScheduleRequest struct {
	Type         Type     `json:"type"`
	VehicleID    string   `json:"vehicleId,omitempty"`
	DealershipID string   `json:"dealershipId"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Customer     Customer `json:"customer"`
	Notes        string   `json:"notes,omitempty"`
}

// ScheduleResponse reports the booking outcome. Validation failures carry a
// field-level error list rather than a bare message.
type ScheduleResponse struct {
	Success            bool         `json:"success"`
	Appointment        *Appointment `json:"appointment,omitempty"`
	ConfirmationNumber string       `json:"confirmationNumber,omitempty"`
	Message            string       `json:"message"`
	Errors             []string     `json:"errors,omitempty"`
}
