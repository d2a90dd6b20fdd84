package request

// NearestCentersRequest deliberately carries no range bindings on the
// origin: validation and failure classification belong to the search
// service, so an out-of-range origin surfaces as INVALID_LOCATION
// instead of a generic binding error.
type NearestCentersRequest struct {
	Latitude    *float64 `form:"lat" binding:"required"`
	Longitude   *float64 `form:"lng" binding:"required"`
	Limit       *int     `form:"limit"`
	MaxRadiusKm *float64 `form:"max_radius_km" binding:"omitempty,gt=0"`
	SerumType   string   `form:"serum_type"`
	UF          string   `form:"uf"`
}
