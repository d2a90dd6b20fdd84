package response

import (
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/stats"
)

type StatsResponse struct {
	TotalCenters int            `json:"total_centers"`
	ByRegion     map[string]int `json:"by_region"`
	ByUF         map[string]int `json:"by_uf"`
	BySerumType  map[string]int `json:"by_serum_type"`
	Bounds       BoundsResponse `json:"bounds"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

func StatsFromSummary(s *stats.Summary) StatsResponse {
	return StatsResponse{
		TotalCenters: s.TotalCenters,
		ByRegion:     s.ByRegion,
		ByUF:         s.ByUF,
		BySerumType:  s.BySerumType,
		Bounds: BoundsResponse{
			MinLat: s.Bounds.MinLat,
			MaxLat: s.Bounds.MaxLat,
			MinLng: s.Bounds.MinLng,
			MaxLng: s.Bounds.MaxLng,
		},
	}
}
