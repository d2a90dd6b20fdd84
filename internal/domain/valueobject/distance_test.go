package valueobject_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
)

var (
	saoPaulo     = valueobject.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	rioDeJaneiro = valueobject.Coordinate{Latitude: -22.9068, Longitude: -43.1729}
)

func TestDistanceKm(t *testing.T) {
	t.Run("identical points yield exactly zero", func(t *testing.T) {
		d, err := valueobject.DistanceKm(saoPaulo, saoPaulo)

		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("sao paulo to rio is about 357 km", func(t *testing.T) {
		d, err := valueobject.DistanceKm(saoPaulo, rioDeJaneiro)

		require.NoError(t, err)
		assert.InEpsilon(t, 357.0, d, 0.01)
	})

	t.Run("is symmetric", func(t *testing.T) {
		there, err := valueobject.DistanceKm(saoPaulo, rioDeJaneiro)
		require.NoError(t, err)
		back, err := valueobject.DistanceKm(rioDeJaneiro, saoPaulo)
		require.NoError(t, err)

		assert.InDelta(t, there, back, 1e-9)
	})

	t.Run("rejects invalid first operand", func(t *testing.T) {
		_, err := valueobject.DistanceKm(valueobject.Coordinate{Latitude: 200}, rioDeJaneiro)

		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	})

	t.Run("rejects nan second operand", func(t *testing.T) {
		_, err := valueobject.DistanceKm(saoPaulo, valueobject.Coordinate{Latitude: math.NaN()})

		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
	})

	t.Run("agrees with s2 spherical distance", func(t *testing.T) {
		pairs := []struct {
			a, b valueobject.Coordinate
		}{
			{saoPaulo, rioDeJaneiro},
			{valueobject.Coordinate{Latitude: -3.1190, Longitude: -60.0217}, saoPaulo},   // Manaus
			{valueobject.Coordinate{Latitude: -30.0346, Longitude: -51.2177}, saoPaulo},  // Porto Alegre
			{valueobject.Coordinate{Latitude: 2.8235, Longitude: -60.6758}, rioDeJaneiro}, // Boa Vista
		}

		for _, p := range pairs {
			got, err := valueobject.DistanceKm(p.a, p.b)
			require.NoError(t, err)

			ll1 := s2.LatLngFromDegrees(p.a.Latitude, p.a.Longitude)
			ll2 := s2.LatLngFromDegrees(p.b.Latitude, p.b.Longitude)
			want := ll1.Distance(ll2).Radians() * 6371.0

			assert.InEpsilon(t, want, got, 1e-6)
		}
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want string
	}{
		{"sub-kilometer renders meters", 0.5, "500 m"},
		{"zero renders zero meters", 0, "0 m"},
		{"negative treated as zero", -1, "0 m"},
		{"single-digit km keeps one decimal", 5.75, "5.8 km"},
		{"one km exactly", 1, "1.0 km"},
		{"double-digit km rounds whole", 150, "150 km"},
		{"ten km boundary", 10, "10 km"},
		{"rounds meters to nearest", 0.1234, "123 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valueobject.FormatDistance(tt.km))
		})
	}
}
