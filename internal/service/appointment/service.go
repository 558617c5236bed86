// Package appointment books test drives, service visits and consultations
// against the dealership directory. Bookings live in memory only.
package appointment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"motorscout-service/internal/catalog"
	"motorscout-service/internal/domain/appointment"
	xerrors "motorscout-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	slotsPerDealership = 5
	maxSlotsReturned   = 8
)

type AppointmentService struct {
	mu           sync.RWMutex
	appointments map[string]*appointment.Appointment // keyed by confirmation number
	entropy      *rand.Rand
	logger       *zap.Logger
}

func NewAppointmentService(logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: make(map[string]*appointment.Appointment),
		entropy:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:       logger,
	}
}

// Dealerships returns the dealership directory.
func (s *AppointmentService) Dealerships(ctx context.Context) []appointment.Dealership {
	return catalog.Dealerships()
}

// CheckAvailability reports test-drive slots for a vehicle on a date.
// Unknown vehicles and out-of-stock vehicles come back unavailable with an
// explanatory message, not an error.
func (s *AppointmentService) CheckAvailability(ctx context.Context, req appointment.AvailabilityRequest) (appointment.AvailabilityResponse, error) {
	if req.VehicleID == "" || req.Date == "" {
		return appointment.AvailabilityResponse{}, xerrors.Wrap(xerrors.ErrValidation, "vehicleId and date are required")
	}

	v, found := catalog.VehicleByID(req.VehicleID)
	if !found {
		return appointment.AvailabilityResponse{
			Available:   false,
			Message:     "Vehicle not found",
			Slots:       []appointment.TimeSlot{},
			Dealerships: []appointment.Dealership{},
		}, nil
	}

	if !v.Available || v.Stock == 0 {
		return appointment.AvailabilityResponse{
			Available: false,
			Vehicle:   &v,
			Message: fmt.Sprintf("The %d %s %s is currently not available for test drives.",
				v.Year, v.Make, v.Model),
			Slots:       []appointment.TimeSlot{},
			Dealerships: []appointment.Dealership{},
		}, nil
	}

	var dealerships []appointment.Dealership
	if req.DealershipID != "" {
		if d, ok := catalog.DealershipByID(req.DealershipID); ok {
			dealerships = []appointment.Dealership{d}
		}
	} else {
		for _, d := range catalog.Dealerships() {
			if contains(d.Services, "Test Drives") {
				dealerships = append(dealerships, d)
			}
		}
	}

	requestedDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return appointment.AvailabilityResponse{}, xerrors.Wrap(xerrors.ErrValidation, "date must be YYYY-MM-DD")
	}

	var allSlots []appointment.TimeSlot
	for _, d := range dealerships {
		matched := 0
		for _, slot := range catalog.GenerateTimeSlots(d.ID, requestedDate) {
			if slot.Date != req.Date || !slot.Available {
				continue
			}
			if req.Time != "" && !strings.EqualFold(slot.Time, req.Time) {
				continue
			}
			allSlots = append(allSlots, slot)
			matched++
			if matched == slotsPerDealership {
				break
			}
		}
	}

	if req.Time != "" {
		if len(allSlots) > 0 {
			return appointment.AvailabilityResponse{
				Available:   true,
				Vehicle:     &v,
				Slots:       allSlots[:1],
				Dealerships: dealerships,
				Message: fmt.Sprintf("Great news! The %d %s %s is available for a test drive on %s at %s.",
					v.Year, v.Make, v.Model, req.Date, req.Time),
			}, nil
		}

		// Requested time taken; offer alternatives for the same date.
		alternatives := s.slotsForDate(dealerships, requestedDate, req.Date)
		return appointment.AvailabilityResponse{
			Available:   true,
			Vehicle:     &v,
			Slots:       capSlots(alternatives, 6),
			Dealerships: dealerships,
			Message: fmt.Sprintf("The %d %s %s is not available at %s on %s, but here are some alternative times.",
				v.Year, v.Make, v.Model, req.Time, req.Date),
		}, nil
	}

	msg := fmt.Sprintf("The %d %s %s is available for test drives on %s. Here are the available times.",
		v.Year, v.Make, v.Model, req.Date)
	if len(allSlots) == 0 {
		msg = fmt.Sprintf("Unfortunately, there are no available slots for the %d %s %s on %s. Would you like to try a different date?",
			v.Year, v.Make, v.Model, req.Date)
	}

	return appointment.AvailabilityResponse{
		Available:   len(allSlots) > 0,
		Vehicle:     &v,
		Slots:       capSlots(allSlots, maxSlotsReturned),
		Dealerships: dealerships,
		Message:     msg,
	}, nil
}

// Schedule books an appointment. Field-level validation failures come back
// in the response's Errors list rather than as a Go error, matching what the
// booking wizard and the chat tool render.
func (s *AppointmentService) Schedule(ctx context.Context, req appointment.ScheduleRequest) appointment.ScheduleResponse {
	var errs []string
	if req.Type == "" {
		errs = append(errs, "Appointment type is required")
	}
	if req.DealershipID == "" {
		errs = append(errs, "Dealership is required")
	}
	if req.Date == "" {
		errs = append(errs, "Date is required")
	}
	if req.Time == "" {
		errs = append(errs, "Time is required")
	}
	if req.Customer.Email == "" {
		errs = append(errs, "Customer email is required")
	}
	if req.Customer.Phone == "" {
		errs = append(errs, "Customer phone is required")
	}
	if req.Customer.FirstName == "" {
		errs = append(errs, "Customer first name is required")
	}
	if req.Customer.LastName == "" {
		errs = append(errs, "Customer last name is required")
	}
	if len(errs) > 0 {
		return appointment.ScheduleResponse{Success: false, Message: "Validation failed", Errors: errs}
	}

	dealership, ok := catalog.DealershipByID(req.DealershipID)
	if !ok {
		return appointment.ScheduleResponse{
			Success: false,
			Message: "Invalid dealership selected",
			Errors:  []string{"Dealership not found"},
		}
	}

	apt := &appointment.Appointment{
		Type:         req.Type,
		DealershipID: req.DealershipID,
		Dealership:   &dealership,
		Date:         req.Date,
		Time:         req.Time,
		Customer:     req.Customer,
		Status:       appointment.StatusConfirmed,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}

	if req.Type == appointment.TypeTestDrive && req.VehicleID != "" {
		v, found := catalog.VehicleByID(req.VehicleID)
		if !found {
			return appointment.ScheduleResponse{
				Success: false,
				Message: "Vehicle not found",
				Errors:  []string{"The selected vehicle is not available"},
			}
		}
		if !v.Available || v.Stock == 0 {
			return appointment.ScheduleResponse{
				Success: false,
				Message: "Vehicle not available",
				Errors: []string{fmt.Sprintf("The %d %s %s is not currently available for test drives",
					v.Year, v.Make, v.Model)},
			}
		}
		apt.VehicleID = req.VehicleID
		apt.Vehicle = &v
	}

	s.mu.Lock()
	apt.ID = "apt-" + ulid.MustNew(ulid.Timestamp(apt.CreatedAt), s.entropy).String()
	apt.ConfirmationNumber = "CONF-" + ulid.MustNew(ulid.Timestamp(apt.CreatedAt), s.entropy).String()[16:]
	s.appointments[apt.ConfirmationNumber] = apt
	s.mu.Unlock()

	s.logger.Info("appointment booked",
		zap.String("confirmation", apt.ConfirmationNumber),
		zap.String("type", string(apt.Type)),
		zap.String("dealership", dealership.Name),
	)

	msg := s.confirmationMessage(apt, dealership)
	return appointment.ScheduleResponse{
		Success:            true,
		Appointment:        apt,
		ConfirmationNumber: apt.ConfirmationNumber,
		Message: fmt.Sprintf("%s Confirmation number: %s. A confirmation email has been sent to %s.",
			msg, apt.ConfirmationNumber, req.Customer.Email),
	}
}

// ByConfirmation looks up a booked appointment.
func (s *AppointmentService) ByConfirmation(ctx context.Context, confirmation string) (*appointment.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apt, ok := s.appointments[confirmation]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return apt, nil
}

func (s *AppointmentService) confirmationMessage(apt *appointment.Appointment, d appointment.Dealership) string {
	switch apt.Type {
	case appointment.TypeTestDrive:
		if apt.Vehicle != nil {
			return fmt.Sprintf("Your test drive for the %d %s %s has been confirmed for %s at %s at %s.",
				apt.Vehicle.Year, apt.Vehicle.Make, apt.Vehicle.Model, apt.Date, apt.Time, d.Name)
		}
		return fmt.Sprintf("Your test drive has been confirmed for %s at %s at %s.", apt.Date, apt.Time, d.Name)
	case appointment.TypeService:
		return fmt.Sprintf("Your service appointment has been confirmed for %s at %s at %s.", apt.Date, apt.Time, d.Name)
	default:
		return fmt.Sprintf("Your consultation has been confirmed for %s at %s at %s.", apt.Date, apt.Time, d.Name)
	}
}

func (s *AppointmentService) slotsForDate(dealerships []appointment.Dealership, start time.Time, date string) []appointment.TimeSlot {
	var out []appointment.TimeSlot
	for _, d := range dealerships {
		for _, slot := range catalog.GenerateTimeSlots(d.ID, start) {
			if slot.Date == date && slot.Available {
				out = append(out, slot)
			}
		}
	}
	return out
}

func capSlots(slots []appointment.TimeSlot, n int) []appointment.TimeSlot {
	if slots == nil {
		return []appointment.TimeSlot{}
	}
	if len(slots) > n {
		return slots[:n]
	}
	return slots
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
