package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler/dto/request"
	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler/dto/response"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/metrics"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/httputil"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/search"
)

type SearchHandler struct {
	searchSvc SearchService
	metrics   *metrics.Provider
}

func NewSearchHandler(searchSvc SearchService, m *metrics.Provider) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc, metrics: m}
}

// Nearest handles GET /centers/nearest. An empty result list is a 200:
// "nothing within the radius" is an answer, not an error.
func (h *SearchHandler) Nearest(c *gin.Context) {
	var req request.NearestCentersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.observe(metrics.OutcomeBadRequest, 0, 0)
		httputil.ValidationError(c, err)
		return
	}

	start := time.Now()
	results, err := h.searchSvc.Search(c.Request.Context(), search.Input{
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Limit:       req.Limit,
		MaxRadiusKm: req.MaxRadiusKm,
		SerumType:   req.SerumType,
		UF:          req.UF,
	})
	elapsed := time.Since(start).Seconds()

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLocation):
			h.observe(metrics.OutcomeInvalidLocation, 0, elapsed)
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "invalid origin coordinates")
		case errors.Is(err, domain.ErrNoData):
			h.observe(metrics.OutcomeNoData, 0, elapsed)
			httputil.ErrorWithCode(c, http.StatusServiceUnavailable, "NO_DATA", "center data is unavailable")
		case errors.Is(err, domain.ErrComputation):
			h.observe(metrics.OutcomeComputationError, 0, elapsed)
			httputil.ErrorWithCode(c, http.StatusInternalServerError, "COMPUTATION_ERROR", "search failed")
		default:
			h.observe(metrics.OutcomeComputationError, 0, elapsed)
			httputil.InternalError(c)
		}
		return
	}

	h.observe(metrics.OutcomeOK, len(results), elapsed)
	httputil.OK(c, response.NearestFromResults(results))
}

func (h *SearchHandler) observe(outcome string, count int, seconds float64) {
	if h.metrics != nil {
		h.metrics.ObserveSearch(outcome, count, seconds)
	}
}
