package pricing

import (
	"context"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
)

type PricingService interface {
	Plans(ctx context.Context) []model.PricingPlan
	Current(ctx context.Context) model.PricingPlan
	Select(ctx context.Context, req model.SelectPlanRequest) (model.PricingPlan, error)
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Plans returns the subscription catalog. The catalog itself is fixed;
// only the selection is stored.
func (s *Service) Plans(_ context.Context) []model.PricingPlan {
	current := s.store.CurrentPlan()
	plans := planCatalog()
	for i := range plans {
		plans[i].IsActive = plans[i].ID == current.ID
	}
	return plans
}

func (s *Service) Current(_ context.Context) model.PricingPlan {
	return s.store.CurrentPlan()
}

// Select makes the given plan current. The store forces IsActive on the
// stored value; selecting the active plan again is idempotent.
func (s *Service) Select(ctx context.Context, req model.SelectPlanRequest) (model.PricingPlan, error) {
	return s.store.UpdatePlan(ctx, model.PricingPlan{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Features: req.Features,
	})
}

func planCatalog() []model.PricingPlan {
	return []model.PricingPlan{
		{
			ID:    "basic",
			Name:  "Basic Plan",
			Price: 99,
			Features: []string{
				"Up to 100 patients",
				"Basic appointment scheduling",
				"Medicine inventory",
				"OPD management",
			},
		},
		{
			ID:    "pro",
			Name:  "Pro Plan",
			Price: 199,
			Features: []string{
				"Up to 500 patients",
				"Advanced scheduling",
				"Inventory management",
				"OPD management",
				"Analytics dashboard",
				"Priority support",
			},
		},
		{
			ID:    "enterprise",
			Name:  "Enterprise",
			Price: 399,
			Features: []string{
				"Unlimited patients",
				"Full feature access",
				"Custom integrations",
				"Dedicated support",
				"Advanced analytics",
				"Multi-branch support",
			},
		},
	}
}
