package appointment

import (
	"time"

	"motorscout-service/internal/domain/vehicle"
)

type Type string
type Status string

const (
	TypeTestDrive    Type = "test-drive"
	TypeService      Type = "service"
	TypeConsultation Type = "consultation"

	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Dealership is a physical location where appointments are booked.
type Dealership struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	State     string            `json:"state"`
	Zip       string            `json:"zip"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Rating    float64           `json:"rating"`
	Services  []string          `json:"services"`
	Hours     map[string]string `json:"hours"`
}

// TimeSlot is one bookable slot at a dealership.
type TimeSlot struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM AM/PM
	Available    bool   `json:"available"`
	DealershipID string `json:"dealershipId"`
}

// Customer holds the booking contact details.
type Customer struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PreferredContact string `json:"preferredContact,omitempty"`
}

// Appointment is a booked test drive, service visit or consultation.
// Appointments live in memory only; there is no persistence layer.
type Appointment struct {
	ID                 string           `json:"id"`
	Type               Type             `json:"type"`
	VehicleID          string           `json:"vehicleId,omitempty"`
	Vehicle            *vehicle.Vehicle `json:"vehicle,omitempty"`
	DealershipID       string           `json:"dealershipId"`
	Dealership         *Dealership      `json:"dealership,omitempty"`
	Date               string           `json:"date"`
	Time               string           `json:"time"`
	Customer           Customer         `json:"customer"`
	Status             Status           `json:"status"`
	ConfirmationNumber string           `json:"confirmationNumber"`
	Notes              string           `json:"notes,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
}
