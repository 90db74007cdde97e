package pharmacy

import (
	"context"
	"fmt"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
	"github.com/medidesk/frontdesk-api/internal/view"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
	"github.com/medidesk/frontdesk-api/pkg/metrics"
)

// SelfServicePatient is the patient id recorded on walk-up pharmacy
// orders placed without a registered patient.
const SelfServicePatient = "SELF-SERVICE"

type PharmacyService interface {
	Catalog(ctx context.Context) []model.Medicine
	CartTotal(ctx context.Context, items []model.OrderItem) float64
	PlaceOrder(ctx context.Context, req model.CreateOrderRequest) (*PlacedOrder, error)
	Orders(ctx context.Context) []model.Order
}

// PlacedOrder pairs the stored order with its human-facing tracking
// number, which is distinct from the order's opaque id.
type PlacedOrder struct {
	Order       *model.Order `json:"order"`
	OrderNumber int64        `json:"orderNumber"`
}

type Service struct {
	store   *store.Store
	metrics *metrics.Metrics
}

func NewService(s *store.Store, m *metrics.Metrics) *Service {
	return &Service{store: s, metrics: m}
}

func (s *Service) Catalog(_ context.Context) []model.Medicine {
	return s.store.Medicines()
}

func (s *Service) Orders(_ context.Context) []model.Order {
	return s.store.Orders()
}

// CartTotal prices a cart against the current catalog. Lines naming an
// unknown medicine contribute 0.
func (s *Service) CartTotal(_ context.Context, items []model.OrderItem) float64 {
	return view.CartTotal(view.NewPriceIndex(s.store.Medicines()), items)
}

// PlaceOrder advances the order counter and records the order. The
// total is trusted as submitted; the cart-total view exists for the
// caller to compute it first.
func (s *Service) PlaceOrder(ctx context.Context, req model.CreateOrderRequest) (*PlacedOrder, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.BadRequest("cart is empty", nil)
	}
	if req.PatientID == "" {
		req.PatientID = SelfServicePatient
	}
	if req.Status == "" {
		req.Status = model.OrderStatusPending
	}

	orderNumber, err := s.store.NextOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to advance order counter: %w", err)
	}

	order, err := s.store.AddOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
	}
	return &PlacedOrder{Order: order, OrderNumber: orderNumber}, nil
}
