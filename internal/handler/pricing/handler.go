package pricing

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/service/pricing"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
	"github.com/medidesk/frontdesk-api/pkg/httputil"
)

type Handler struct {
	service pricing.PricingService
}

func NewHandler(service pricing.PricingService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/current", h.CurrentPlan)
		plans.PUT("/current", h.SelectPlan)
	}
}

func (h *Handler) ListPlans(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Plans(c.Request.Context()))
}

func (h *Handler) CurrentPlan(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Current(c.Request.Context()))
}

func (h *Handler) SelectPlan(c *gin.Context) {
	var req model.SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	plan, err := h.service.Select(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, plan)
}
