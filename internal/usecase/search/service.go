package search

import (
	"context"
	"fmt"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
)

// Service is the boundary-facing entry point for nearest-center
// searches. It validates raw input, classifies failures into the
// domain's closed error set and keeps Rank itself pure.
type Service struct {
	centerRepo repository.CenterRepository
}

func NewService(centerRepo repository.CenterRepository) *Service {
	return &Service{centerRepo: centerRepo}
}

// Input carries a not-yet-validated origin plus optional constraints.
// Nil pointer fields mean the caller supplied no value.
type Input struct {
	Latitude    float64
	Longitude   float64
	Limit       *int
	MaxRadiusKm *float64
	SerumType   string
	UF          string
}

// Search ranks all known centers against the origin in input.
//
// Failure modes: domain.ErrInvalidLocation when the origin fails
// coordinate validation, domain.ErrNoData when the center store is
// empty or unreachable, domain.ErrComputation for any fault inside the
// ranking pass. An empty result slice with a nil error is a legitimate
// outcome (for example a radius tighter than the nearest center).
func (s *Service) Search(ctx context.Context, input Input) (results []RankedCenter, err error) {
	origin, cerr := valueobject.NewCoordinate(input.Latitude, input.Longitude)
	if cerr != nil {
		return nil, domain.ErrInvalidLocation
	}

	centers, lerr := s.centerRepo.ListAll(ctx)
	if lerr != nil {
		return nil, fmt.Errorf("%w: loading centers: %v", domain.ErrNoData, lerr)
	}
	if len(centers) == 0 {
		return nil, domain.ErrNoData
	}

	// Rank cannot fault on validated input, but a corrupted store
	// record must not escape as a raw panic.
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("%w: %v", domain.ErrComputation, r)
		}
	}()

	results, rerr := Rank(centers, origin, normalizeOptions(input))
	if rerr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrComputation, rerr)
	}
	return results, nil
}

// normalizeOptions applies defaults exactly once, at the orchestrator
// boundary. An explicit non-positive limit is passed through so Rank
// returns an empty set for it.
func normalizeOptions(input Input) Options {
	opts := Options{
		Limit:     DefaultLimit,
		SerumType: input.SerumType,
		UF:        input.UF,
	}
	if input.Limit != nil {
		opts.Limit = *input.Limit
	}
	if input.MaxRadiusKm != nil && *input.MaxRadiusKm > 0 {
		opts.MaxRadiusKm = *input.MaxRadiusKm
	}
	return opts
}
