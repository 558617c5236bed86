package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"motorscout-service/internal/domain/vehicle"
	"motorscout-service/internal/pkg/geo"
)

// applyFilters runs the superset of filters the upstream provider cannot
// express natively. Each filter is a no-op when its criterion is absent.
func applyFilters(vehicles []vehicle.Vehicle, c vehicle.SearchCriteria) []vehicle.Vehicle {
	out := vehicles

	if c.Make != "" {
		out = keep(out, func(v vehicle.Vehicle) bool {
			return strings.Contains(strings.ToLower(v.Make), strings.ToLower(c.Make))
		})
	}
	if c.Model != "" {
		out = keep(out, func(v vehicle.Vehicle) bool {
			return strings.Contains(strings.ToLower(v.Model), strings.ToLower(c.Model))
		})
	}
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		out = keep(out, func(v vehicle.Vehicle) bool {
			label := strings.ToLower(fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model))
			return strings.Contains(label, q) || strings.Contains(strings.ToLower(string(v.Type)), q)
		})
	}
	if c.Type != "" {
		out = keep(out, func(v vehicle.Vehicle) bool {
			return strings.EqualFold(string(v.Type), c.Type)
		})
	}
	if c.PriceMin != nil {
		out = keep(out, func(v vehicle.Vehicle) bool { return v.Price >= *c.PriceMin })
	}
	if c.PriceMax != nil {
		out = keep(out, func(v vehicle.Vehicle) bool { return v.Price <= *c.PriceMax })
	}
	if c.Year != nil {
		out = keep(out, func(v vehicle.Vehicle) bool { return v.Year == *c.Year })
	}
	if c.YearMin != nil {
		out = keep(out, func(v vehicle.Vehicle) bool { return v.Year >= *c.YearMin })
	}
	if c.YearMax != nil {
		out = keep(out, func(v vehicle.Vehicle) bool { return v.Year <= *c.YearMax })
	}
	if c.Condition != "" {
		out = keep(out, func(v vehicle.Vehicle) bool {
			return strings.EqualFold(string(v.Condition), c.Condition)
		})
	}
	if c.MPGMin != nil {
		// Vehicles without an MPG pair fail this filter. Electric vehicles
		// carrying only a range figure are excluded too; range-to-MPGe
		// conversion is deliberately not attempted.
		out = keep(out, func(v vehicle.Vehicle) bool {
			avg, ok := v.AverageMPG()
			return ok && avg >= *c.MPGMin
		})
	}
	if c.MileageMax != nil {
		// Vehicles with no recorded mileage always pass.
		out = keep(out, func(v vehicle.Vehicle) bool {
			return v.Mileage == nil || *v.Mileage <= *c.MileageMax
		})
	}
	if len(c.Features) > 0 {
		out = keep(out, func(v vehicle.Vehicle) bool {
			for _, want := range c.Features {
				for _, have := range v.Features {
					if strings.Contains(strings.ToLower(have), strings.ToLower(want)) {
						return true
					}
				}
			}
			return false
		})
	}
	if c.HasCoordinates() && c.RadiusMiles > 0 {
		origin := geo.Point{Latitude: *c.Latitude, Longitude: *c.Longitude}
		out = keep(out, func(v vehicle.Vehicle) bool {
			// Inventory without its own coordinates stays visible rather
			// than being hidden by missing metadata.
			if !v.HasCoordinates() {
				return true
			}
			pt := geo.Point{Latitude: *v.Latitude, Longitude: *v.Longitude}
			return geo.DistanceMiles(origin, pt) <= c.RadiusMiles
		})
	}

	return out
}

func keep(vehicles []vehicle.Vehicle, pred func(vehicle.Vehicle) bool) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// rank orders results for presentation: available before unavailable,
// higher stock first, then ascending price.
func rank(vehicles []vehicle.Vehicle) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		a, b := vehicles[i], vehicles[j]
		if a.Available != b.Available {
			return a.Available
		}
		if a.Stock != b.Stock {
			return a.Stock > b.Stock
		}
		return a.Price < b.Price
	})
}

// summarize builds the one-line result description shown in the UI and in
// chat responses. Prices carry thousands separators.
func summarize(vehicles []vehicle.Vehicle) string {
	switch len(vehicles) {
	case 0:
		return "No vehicles found matching your criteria. Try adjusting your search parameters."
	case 1:
		v := vehicles[0]
		return fmt.Sprintf("Found 1 vehicle: %d %s %s for $%s", v.Year, v.Make, v.Model, formatPrice(v.Price))
	}

	msg := fmt.Sprintf("Found %d vehicles matching your criteria", len(vehicles))

	min, max := vehicles[0].Price, vehicles[0].Price
	for _, v := range vehicles[1:] {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	if min != max {
		msg += fmt.Sprintf(" ranging from $%s to $%s", formatPrice(min), formatPrice(max))
	}

	return msg
}

// formatPrice renders a currency amount with comma separators, dropping the
// fractional part the way listing prices are displayed.
func formatPrice(price float64) string {
	s := strconv.FormatInt(int64(price), 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
