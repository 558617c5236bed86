package catalog

import (
	"hash/fnv"
	"time"

	"motorscout-service/internal/domain/appointment"
)

var slotTimes = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
}

// GenerateTimeSlots produces the bookable slots for a dealership over the 14
// days starting at startDate. Availability is derived from a hash of
// dealership, date and time so repeated calls within and across requests see
// the same schedule. Roughly 70% of slots come back available.
func GenerateTimeSlots(dealershipID string, startDate time.Time) []appointment.TimeSlot {
	slots := make([]appointment.TimeSlot, 0, 14*len(slotTimes))

	for day := 0; day < 14; day++ {
		date := startDate.AddDate(0, 0, day)
		dateStr := date.Format("2006-01-02")

		// Some dealerships sit out Sundays.
		if date.Weekday() == time.Sunday && slotHash(dealershipID, dateStr, "")%2 == 0 {
			continue
		}

		for _, t := range slotTimes {
			slots = append(slots, appointment.TimeSlot{
				Date:         dateStr,
				Time:         t,
				Available:    slotHash(dealershipID, dateStr, t)%10 < 7,
				DealershipID: dealershipID,
			})
		}
	}

	return slots
}

func slotHash(parts ...string) uint32 {
	h := fnv.New32a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{'|'})
	}
	return h.Sum32()
}
