package valueobject

import (
	"fmt"
	"math"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points in
// kilometers, computed with the haversine formula on a spherical Earth
// of radius 6371 km. Both inputs are re-validated since this function
// may be called outside the search path; invalid input fails with
// domain.ErrInvalidCoordinate.
//
// Identical points return exactly 0, sidestepping float instability in
// asin/sqrt at zero separation.
func DistanceKm(a, b Coordinate) (float64, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, domain.ErrInvalidCoordinate
	}
	if a == b {
		return 0, nil
	}

	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLng := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * c, nil
}

// FormatDistance renders a distance for display:
// under 1 km in whole meters, under 10 km with one decimal, otherwise
// whole kilometers. Negative input is treated as zero.
func FormatDistance(km float64) string {
	if km < 0 {
		km = 0
	}
	switch {
	case km < 1:
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	case km < 10:
		return fmt.Sprintf("%.1f km", km)
	default:
		return fmt.Sprintf("%d km", int(math.Round(km)))
	}
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
