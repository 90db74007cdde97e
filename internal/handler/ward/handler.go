package ward

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/service/ward"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
	"github.com/medidesk/frontdesk-api/pkg/httputil"
)

type Handler struct {
	service ward.WardService
}

func NewHandler(service ward.WardService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	wards := r.Group("/wards")
	{
		wards.GET("", h.Layout)
		wards.GET("/stats", h.Stats)
		wards.POST("/stats", h.StatsFor)
	}
}

type layoutResponse struct {
	Departments []model.Department `json:"departments"`
	Stats       model.BedStats     `json:"stats"`
}

func (h *Handler) Layout(c *gin.Context) {
	ctx := c.Request.Context()
	httputil.RespondWithSuccess(c, layoutResponse{
		Departments: h.service.Layout(ctx),
		Stats:       h.service.Stats(ctx),
	})
}

func (h *Handler) Stats(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Stats(c.Request.Context()))
}

type statsRequest struct {
	Departments []model.Department `json:"departments"`
}

// StatsFor computes occupancy for a posted layout without touching the
// seeded one.
func (h *Handler) StatsFor(c *gin.Context) {
	var req statsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	httputil.RespondWithSuccess(c, h.service.StatsFor(c.Request.Context(), req.Departments))
}
