package search

import (
	"fmt"
	"sort"

	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/valueobject"
)

// DefaultLimit is the number of results returned when no limit is given.
const DefaultLimit = 5

// Options constrains a ranking pass. Zero values mean "no constraint",
// except Limit, which the orchestrator defaults before calling Rank.
type Options struct {
	Limit       int
	MaxRadiusKm float64
	SerumType   string
	UF          string
}

// RankedCenter pairs a center with its distance from the search origin.
type RankedCenter struct {
	Center        entity.Center
	DistanceKm    float64
	DistanceLabel string
}

// Rank produces the ordered, filtered, limited result list for one
// origin. It is a pure function of its inputs and never mutates the
// center slice.
//
// Distances are computed for every center before any filter runs. The
// UF and serum-type filters are exact, case-sensitive matches; the
// radius boundary is inclusive. The sort is stable, so centers at equal
// distance keep their input order. A non-positive limit yields an empty
// result set rather than an error.
func Rank(centers []entity.Center, origin valueobject.Coordinate, opts Options) ([]RankedCenter, error) {
	ranked := make([]RankedCenter, 0, len(centers))
	for i := range centers {
		d, err := valueobject.DistanceKm(origin, centers[i].Coordinate)
		if err != nil {
			return nil, fmt.Errorf("distance to center %s: %w", centers[i].ID, err)
		}
		ranked = append(ranked, RankedCenter{
			Center:        centers[i],
			DistanceKm:    d,
			DistanceLabel: valueobject.FormatDistance(d),
		})
	}

	if opts.UF != "" {
		ranked = keep(ranked, func(rc RankedCenter) bool {
			return rc.Center.UF == opts.UF
		})
	}
	if opts.SerumType != "" {
		ranked = keep(ranked, func(rc RankedCenter) bool {
			return rc.Center.HasSerumType(opts.SerumType)
		})
	}
	if opts.MaxRadiusKm > 0 {
		ranked = keep(ranked, func(rc RankedCenter) bool {
			return rc.DistanceKm <= opts.MaxRadiusKm
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if opts.Limit <= 0 {
		return []RankedCenter{}, nil
	}
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return ranked, nil
}

func keep(in []RankedCenter, pred func(RankedCenter) bool) []RankedCenter {
	out := in[:0:0]
	for _, rc := range in {
		if pred(rc) {
			out = append(out, rc)
		}
	}
	return out
}
