package registration

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/service/registration"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
	"github.com/medidesk/frontdesk-api/pkg/httputil"
)

type Handler struct {
	service registration.RegistrationService
}

func NewHandler(service registration.RegistrationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/opd/registrations", h.Register)
}

// Register runs the intake gate. Constraint violations come back as a
// field-keyed message list with nothing written to the store.
func (h *Handler) Register(c *gin.Context) {
	var reg model.OPDRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	result, err := h.service.Register(c.Request.Context(), reg)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, result)
}
