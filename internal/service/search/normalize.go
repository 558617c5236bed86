package search

import (
	"fmt"
	"regexp"
	"strings"

	"motorscout-service/internal/domain/vehicle"
	xerrors "motorscout-service/internal/pkg/errors"
)

// DefaultRadiusMiles applies when a location is resolvable and the caller
// did not ask for a specific radius.
const DefaultRadiusMiles = 25

// MaxLimit bounds every result set regardless of what a caller asks for.
const MaxLimit = 50

var zipPattern = regexp.MustCompile(`^\d{5}$`)

var bodyTypes = []vehicle.BodyType{
	vehicle.BodySUV, vehicle.BodySedan, vehicle.BodyTruck,
	vehicle.BodyElectric, vehicle.BodyHybrid, vehicle.BodyCoupe,
	vehicle.BodyMinivan,
}

// Normalize converts the loosely-typed request into canonical criteria.
// Every field is individually optional; absence means no constraint. Only
// structurally invalid input (negative amounts, unknown body type) is an
// error, and that error wraps xerrors.ErrValidation so the HTTP boundary
// can reject it as a 400.
func Normalize(raw vehicle.SearchRequest) (vehicle.SearchCriteria, error) {
	c := vehicle.SearchCriteria{
		Query:      strings.TrimSpace(raw.Query),
		Make:       strings.TrimSpace(raw.Make),
		Model:      strings.TrimSpace(raw.Model),
		Condition:  strings.TrimSpace(raw.Condition),
		PriceMin:   raw.PriceMin,
		PriceMax:   raw.PriceMax,
		Year:       raw.Year,
		YearMin:    raw.YearMin,
		YearMax:    raw.YearMax,
		MPGMin:     raw.MPGMin,
		MileageMax: raw.MileageMax,
		Features:   raw.Features,
		Zip:        strings.TrimSpace(raw.Zip),
		Limit:      raw.Limit,
	}

	if t := strings.TrimSpace(raw.Type); t != "" {
		matched := false
		for _, bt := range bodyTypes {
			if strings.EqualFold(t, string(bt)) {
				c.Type = string(bt)
				matched = true
				break
			}
		}
		if !matched {
			return vehicle.SearchCriteria{}, xerrors.Wrap(xerrors.ErrValidation, fmt.Sprintf("unknown vehicle type %q", t))
		}
	}

	if err := checkNonNegative(raw); err != nil {
		return vehicle.SearchCriteria{}, err
	}

	// Explicit coordinates win; the location text is then never geocoded.
	location := strings.TrimSpace(raw.Location)
	if raw.Latitude != nil && raw.Longitude != nil {
		c.Latitude = raw.Latitude
		c.Longitude = raw.Longitude
	} else if location != "" {
		// A bare 5-digit string is a postal code, which the upstream
		// provider accepts natively. It bypasses geocoding entirely.
		if zipPattern.MatchString(location) {
			if c.Zip == "" {
				c.Zip = location
			}
		} else {
			c.Location = location
		}
	}

	if raw.RadiusMiles != nil {
		c.RadiusMiles = *raw.RadiusMiles
	} else if c.HasCoordinates() || c.Zip != "" || c.Location != "" {
		c.RadiusMiles = DefaultRadiusMiles
	}

	if c.Limit <= 0 || c.Limit > MaxLimit {
		c.Limit = MaxLimit
	}

	return c, nil
}

func checkNonNegative(raw vehicle.SearchRequest) error {
	if raw.PriceMin != nil && *raw.PriceMin < 0 {
		return xerrors.Wrap(xerrors.ErrValidation, "priceMin must not be negative")
	}
	if raw.PriceMax != nil && *raw.PriceMax < 0 {
		return xerrors.Wrap(xerrors.ErrValidation, "priceMax must not be negative")
	}
	if raw.MPGMin != nil && *raw.MPGMin < 0 {
		return xerrors.Wrap(xerrors.ErrValidation, "mpgMin must not be negative")
	}
	if raw.MileageMax != nil && *raw.MileageMax < 0 {
		return xerrors.Wrap(xerrors.ErrValidation, "mileageMax must not be negative")
	}
	if raw.RadiusMiles != nil && *raw.RadiusMiles < 0 {
		return xerrors.Wrap(xerrors.ErrValidation, "radiusMiles must not be negative")
	}
	return nil
}
