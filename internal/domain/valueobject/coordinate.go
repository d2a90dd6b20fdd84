package valueobject

import (
	"math"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
)

// Coordinate is an immutable WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate reports whether lat/lng form a well-formed WGS84 pair.
// The intervals are closed: lat=±90 and lng=±180 are accepted.
func Validate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 &&
		lng >= -180 && lng <= 180
}

// NewCoordinate builds a validated Coordinate. Out-of-range or NaN
// components fail with domain.ErrInvalidCoordinate; values are never
// clamped.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if !Validate(lat, lng) {
		return Coordinate{}, domain.ErrInvalidCoordinate
	}
	return Coordinate{Latitude: lat, Longitude: lng}, nil
}

func (c Coordinate) IsValid() bool {
	return Validate(c.Latitude, c.Longitude)
}
