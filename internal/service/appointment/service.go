package appointment

import (
	"context"
	"fmt"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req model.UpdateAppointmentRequest) (*model.Appointment, error)
	ListAppointments(ctx context.Context) []model.Appointment
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// CreateAppointment records an appointment. Patient and doctor ids are
// soft references; consuming code treats a dangling id as an empty
// lookup, not an error.
func (s *Service) CreateAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.store.AddAppointment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

// UpdateAppointment applies a partial update with the store's
// merge-or-silent-no-op semantics.
func (s *Service) UpdateAppointment(ctx context.Context, id string, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.store.UpdateAppointment(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) ListAppointments(_ context.Context) []model.Appointment {
	return s.store.Appointments()
}
