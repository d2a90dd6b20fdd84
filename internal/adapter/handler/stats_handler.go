package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler/dto/response"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/httputil"
)

type StatsHandler struct {
	statsSvc StatsService
}

func NewStatsHandler(statsSvc StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.statsSvc.Summary(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			httputil.ErrorWithCode(c, http.StatusServiceUnavailable, "NO_DATA", "center data is unavailable")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.StatsFromSummary(summary))
}
