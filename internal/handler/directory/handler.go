package directory

import (
	"github.com/gin-gonic/gin"

	"github.com/medidesk/frontdesk-api/internal/service/directory"
	"github.com/medidesk/frontdesk-api/internal/view"
	"github.com/medidesk/frontdesk-api/pkg/httputil"
)

type Handler struct {
	service directory.DirectoryService
}

func NewHandler(service directory.DirectoryService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/directory/roster", h.Roster)
}

// Roster serves the role-filtered table. An unrecognized role yields an
// empty table rather than an error.
func (h *Handler) Roster(c *gin.Context) {
	role := view.Role(c.DefaultQuery("role", string(view.RolePatients)))
	httputil.RespondWithSuccess(c, h.service.Roster(c.Request.Context(), role))
}
