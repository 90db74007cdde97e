package store

import "github.com/medidesk/frontdesk-api/internal/model"

// State is the single persisted unit: every entity collection, the
// current pricing plan, and the order counter. It is written as a whole
// after each mutation and must round-trip losslessly across restarts.
type State struct {
	Patients     []model.Patient     `json:"patients"`
	Appointments []model.Appointment `json:"appointments"`
	Medicines    []model.Medicine    `json:"medicines"`
	Orders       []model.Order       `json:"orders"`
	CurrentPlan  model.PricingPlan   `json:"currentPlan"`
	OrderCounter int64               `json:"orderCounter"`
}

// seedState is the state a fresh installation starts from: a small
// demo medicine catalog, the basic plan, and the counter at its
// starting mark.
func seedState() State {
	return State{
		Patients:     []model.Patient{},
		Appointments: []model.Appointment{},
		Medicines: []model.Medicine{
			{
				ID:          "med1",
				Name:        "Paracetamol",
				Price:       5.99,
				Stock:       1000,
				Description: "Pain reliever and fever reducer",
			},
			{
				ID:          "med2",
				Name:        "Amoxicillin",
				Price:       12.99,
				Stock:       500,
				Description: "Antibiotic",
			},
		},
		Orders: []model.Order{},
		CurrentPlan: model.PricingPlan{
			ID:    "basic",
			Name:  "Basic Plan",
			Price: 99,
			Features: []string{
				"Up to 100 patients",
				"Basic appointment scheduling",
				"Medicine inventory",
				"OPD management",
			},
			IsActive: true,
		},
		OrderCounter: 1000,
	}
}
