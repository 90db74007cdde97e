package directory

import (
	"context"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
	"github.com/medidesk/frontdesk-api/internal/view"
)

type DirectoryService interface {
	Roster(ctx context.Context, role view.Role) view.Table
}

// Service projects role-filtered table views: patients come from the
// store, doctors from a seeded directory.
type Service struct {
	store   *store.Store
	doctors []model.Doctor
}

func NewService(s *store.Store, doctors []model.Doctor) *Service {
	if doctors == nil {
		doctors = defaultDoctors()
	}
	return &Service{store: s, doctors: doctors}
}

func (s *Service) Roster(_ context.Context, role view.Role) view.Table {
	return view.Roster(role, s.store.Patients(), s.doctors)
}

func defaultDoctors() []model.Doctor {
	return []model.Doctor{
		{ID: "D-1", Name: "Dr. Sarah Johnson", Department: "Cardiology", Contact: "+1 234-567-8910", Status: "active"},
		{ID: "D-2", Name: "Dr. Michael Chen", Department: "Neurology", Contact: "+1 234-567-8911", Status: "active"},
	}
}
