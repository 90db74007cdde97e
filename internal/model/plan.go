package model

// PricingPlan describes a subscription plan. Exactly one plan is
// current at any time; selecting a plan forces IsActive on it.
type PricingPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	IsActive bool     `json:"isActive"`
}

type SelectPlanRequest struct {
	ID       string   `json:"id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"gte=0"`
	Features []string `json:"features"`
}
