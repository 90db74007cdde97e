package pharmacy

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/service/pharmacy"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
	"github.com/medidesk/frontdesk-api/pkg/httputil"
)

const catalogCacheKey = "catalog"

type Handler struct {
	service pharmacy.PharmacyService
	// catalog responses are cached briefly; the catalog is read-mostly
	cache *cache.Cache
}

func NewHandler(service pharmacy.PharmacyService) *Handler {
	return &Handler{
		service: service,
		cache:   cache.New(30*time.Second, 5*time.Minute),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	ph := r.Group("/pharmacy")
	{
		ph.GET("/medicines", h.ListMedicines)
		ph.POST("/cart/total", h.CartTotal)
		ph.POST("/orders", h.PlaceOrder)
		ph.GET("/orders", h.ListOrders)
	}
}

func (h *Handler) ListMedicines(c *gin.Context) {
	if cached, found := h.cache.Get(catalogCacheKey); found {
		httputil.RespondWithSuccess(c, cached.([]model.Medicine))
		return
	}

	medicines := h.service.Catalog(c.Request.Context())
	h.cache.Set(catalogCacheKey, medicines, cache.DefaultExpiration)
	httputil.RespondWithSuccess(c, medicines)
}

type cartRequest struct {
	Items []model.OrderItem `json:"items" binding:"required"`
}

type cartTotalResponse struct {
	Total float64 `json:"total"`
}

func (h *Handler) CartTotal(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	httputil.RespondWithSuccess(c, cartTotalResponse{
		Total: h.service.CartTotal(c.Request.Context(), req.Items),
	})
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	placed, err := h.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, placed)
}

func (h *Handler) ListOrders(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Orders(c.Request.Context()))
}
