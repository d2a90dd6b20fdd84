package stats

import (
	"context"
	"fmt"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
)

type Service struct {
	centerRepo repository.CenterRepository
}

func NewService(centerRepo repository.CenterRepository) *Service {
	return &Service{centerRepo: centerRepo}
}

// Summary aggregates the center dataset for the stats endpoint.
type Summary struct {
	TotalCenters int
	ByRegion     map[string]int
	ByUF         map[string]int
	BySerumType  map[string]int
	Bounds       Bounds
}

// Bounds is the bounding box of all center coordinates.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	centers, err := s.centerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading centers: %w", err)
	}
	if len(centers) == 0 {
		return nil, domain.ErrNoData
	}

	summary := &Summary{
		TotalCenters: len(centers),
		ByRegion:     make(map[string]int),
		ByUF:         make(map[string]int),
		BySerumType:  make(map[string]int),
		Bounds: Bounds{
			MinLat: centers[0].Coordinate.Latitude,
			MaxLat: centers[0].Coordinate.Latitude,
			MinLng: centers[0].Coordinate.Longitude,
			MaxLng: centers[0].Coordinate.Longitude,
		},
	}

	for i := range centers {
		c := &centers[i]
		if c.Region != "" {
			summary.ByRegion[c.Region]++
		}
		if c.UF != "" {
			summary.ByUF[c.UF]++
		}
		for _, t := range c.SerumTypes {
			summary.BySerumType[t]++
		}

		lat, lng := c.Coordinate.Latitude, c.Coordinate.Longitude
		if lat < summary.Bounds.MinLat {
			summary.Bounds.MinLat = lat
		}
		if lat > summary.Bounds.MaxLat {
			summary.Bounds.MaxLat = lat
		}
		if lng < summary.Bounds.MinLng {
			summary.Bounds.MinLng = lng
		}
		if lng > summary.Bounds.MaxLng {
			summary.Bounds.MaxLng = lng
		}
	}

	return summary, nil
}
