package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler/dto/request"
	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler/dto/response"
	"github.com/Antivenom-Brazil/antivenom-app/internal/domain"
	"github.com/Antivenom-Brazil/antivenom-app/internal/pkg/httputil"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/center"
)

type CenterHandler struct {
	centerSvc CenterService
}

func NewCenterHandler(centerSvc CenterService) *CenterHandler {
	return &CenterHandler{centerSvc: centerSvc}
}

func (h *CenterHandler) List(c *gin.Context) {
	var req request.ListCentersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	centers, pageInfo, err := h.centerSvc.List(c.Request.Context(), center.ListInput{
		Page:    req.Page,
		PerPage: req.PerPage,
		UF:      req.UF,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CentersListResponse{
		Centers:    response.CentersFromEntities(centers),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *CenterHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid center id")
		return
	}

	ctr, err := h.centerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCenterNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "center not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.CenterFromEntity(ctr))
}

func (h *CenterHandler) Filters(c *gin.Context) {
	filters, err := h.centerSvc.Filters(c.Request.Context())
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.FiltersResponse{
		UFs:        filters.UFs,
		SerumTypes: filters.SerumTypes,
	})
}
