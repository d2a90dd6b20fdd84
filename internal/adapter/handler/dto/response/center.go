package response

import (
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain/entity"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/pagination"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/search"
)

type CenterResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Municipality string   `json:"municipality"`
	UF           string   `json:"uf"`
	Region       string   `json:"region,omitempty"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	SerumTypes   []string `json:"serum_types"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	CNES         string   `json:"cnes,omitempty"`
	CareType     string   `json:"care_type,omitempty"`
	CareInfo     string   `json:"care_info,omitempty"`
}

type RankedCenterResponse struct {
	Center        CenterResponse `json:"center"`
	DistanceKm    float64        `json:"distance_km"`
	DistanceLabel string         `json:"distance_label"`
}

type NearestCentersResponse struct {
	Results []RankedCenterResponse `json:"results"`
	Count   int                    `json:"count"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type CentersListResponse struct {
	Centers    []CenterResponse   `json:"centers"`
	Pagination PaginationResponse `json:"pagination"`
}

type FiltersResponse struct {
	UFs        []string `json:"ufs"`
	SerumTypes []string `json:"serum_types"`
}

func CenterFromEntity(c *entity.Center) CenterResponse {
	serumTypes := c.SerumTypes
	if serumTypes == nil {
		serumTypes = []string{}
	}
	return CenterResponse{
		ID:           c.ID,
		Name:         c.Name,
		Municipality: c.Municipality,
		UF:           c.UF,
		Region:       c.Region,
		Latitude:     c.Coordinate.Latitude,
		Longitude:    c.Coordinate.Longitude,
		SerumTypes:   serumTypes,
		Address:      c.Address,
		Phone:        c.Phone,
		CNES:         c.CNES,
		CareType:     c.CareType,
		CareInfo:     c.CareInfo,
	}
}

func CentersFromEntities(centers []entity.Center) []CenterResponse {
	result := make([]CenterResponse, 0, len(centers))
	for i := range centers {
		result = append(result, CenterFromEntity(&centers[i]))
	}
	return result
}

func NearestFromResults(results []search.RankedCenter) NearestCentersResponse {
	resp := NearestCentersResponse{
		Results: make([]RankedCenterResponse, 0, len(results)),
		Count:   len(results),
	}
	for i := range results {
		resp.Results = append(resp.Results, RankedCenterResponse{
			Center:        CenterFromEntity(&results[i].Center),
			DistanceKm:    results[i].DistanceKm,
			DistanceLabel: results[i].DistanceLabel,
		})
	}
	return resp
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
