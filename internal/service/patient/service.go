package patient

import (
	"context"
	"fmt"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
)

type PatientService interface {
	CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, req model.UpdatePatientRequest) (*model.Patient, error)
	ListPatients(ctx context.Context) []model.Patient
	GetPatient(ctx context.Context, id string) (*model.Patient, bool)
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	patient, err := s.store.AddPatient(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

// UpdatePatient applies a partial update. An unknown id returns
// (nil, nil): the store treats it as a no-op rather than a failure.
func (s *Service) UpdatePatient(ctx context.Context, id string, req model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.store.UpdatePatient(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

func (s *Service) ListPatients(_ context.Context) []model.Patient {
	return s.store.Patients()
}

func (s *Service) GetPatient(_ context.Context, id string) (*model.Patient, bool) {
	for _, p := range s.store.Patients() {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}
