package ward

import (
	"context"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/view"
)

type WardService interface {
	Layout(ctx context.Context) []model.Department
	Stats(ctx context.Context) model.BedStats
	StatsFor(ctx context.Context, departments []model.Department) model.BedStats
}

// Service serves the ward layout and its occupancy aggregates. The
// layout is demo seed data; occupancy is always derived, never stored.
type Service struct {
	departments []model.Department
}

func NewService(departments []model.Department) *Service {
	if departments == nil {
		departments = defaultLayout()
	}
	return &Service{departments: departments}
}

func (s *Service) Layout(_ context.Context) []model.Department {
	out := make([]model.Department, len(s.departments))
	for i, d := range s.departments {
		out[i] = d
		out[i].Beds = append([]model.Bed(nil), d.Beds...)
	}
	return out
}

func (s *Service) Stats(_ context.Context) model.BedStats {
	return view.BedStats(s.departments)
}

// StatsFor computes occupancy over a caller-supplied layout.
func (s *Service) StatsFor(_ context.Context, departments []model.Department) model.BedStats {
	return view.BedStats(departments)
}

func defaultLayout() []model.Department {
	return []model.Department{
		{
			Name: "ICU",
			Beds: []model.Bed{
				{ID: "ICU-01", Status: model.BedStatusOccupied, Patient: "John Doe", AdmissionDate: "2024-03-14"},
				{ID: "ICU-02", Status: model.BedStatusAvailable},
				{ID: "ICU-03", Status: model.BedStatusMaintenance},
			},
		},
		{
			Name: "General Ward",
			Beds: []model.Bed{
				{ID: "GW-01", Status: model.BedStatusOccupied, Patient: "Jane Smith", AdmissionDate: "2024-03-15"},
				{ID: "GW-02", Status: model.BedStatusOccupied, Patient: "Mike Johnson", AdmissionDate: "2024-03-13"},
				{ID: "GW-03", Status: model.BedStatusAvailable},
			},
		},
	}
}
