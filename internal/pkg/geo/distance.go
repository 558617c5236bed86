package geo

import "math"

// earthRadiusMiles is the mean Earth radius used for great-circle math.
const earthRadiusMiles = 3958.8

// Point is a latitude/longitude pair. Both fields are always set together;
// a partially populated Point is never produced by this package.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceMiles returns the great-circle distance between a and b using the
// haversine formula. The arcsine argument is clamped to [-1, 1] so identical
// or antipodal points cannot produce NaN from floating-point overshoot.
func DistanceMiles(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	root := math.Sqrt(h)
	if root > 1 {
		root = 1
	} else if root < -1 {
		root = -1
	}

	return 2 * earthRadiusMiles * math.Asin(root)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
