package appointment

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/service/appointment"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
	"github.com/medidesk/frontdesk-api/pkg/httputil"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.PUT("/:id", h.UpdateAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, created)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.ListAppointments(c.Request.Context()))
}

// UpdateAppointment mirrors the patient update: unknown ids are a
// silent no-op answered with null data.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	updated, err := h.service.UpdateAppointment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, updated)
}
