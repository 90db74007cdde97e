package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/pkg/metrics"
)

// Store is the single source of truth for every front-desk collection,
// the current pricing plan, and the order counter. All mutation goes
// through its operation set; presentation code never writes fields
// directly. Each mutation synchronously writes the full state to the
// persister before returning.
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
	metrics   *metrics.Metrics
}

// Open loads the persisted state, seeding and persisting the defaults
// when the namespace is empty. metrics may be nil.
func Open(ctx context.Context, persister Persister, m *metrics.Metrics) (*Store, error) {
	loaded, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	s := &Store{persister: persister, metrics: m}
	if loaded != nil {
		s.state = *loaded
		return s, nil
	}

	s.state = seedState()
	if err := persister.Save(ctx, &s.state); err != nil {
		return nil, fmt.Errorf("failed to persist seed state: %w", err)
	}
	return s, nil
}

// newID mints a collection-scoped identifier. A random UUID replaces
// the coarse timestamp scheme the browser build used, which could
// collide under rapid successive calls.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// AddPatient appends a new patient with a fresh id and active status.
// Input is assumed pre-validated by the caller.
func (s *Store) AddPatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient := model.Patient{
		ID:        newID("P"),
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Contact:   req.Contact,
		Address:   req.Address,
		LastVisit: req.LastVisit,
		Status:    model.PatientStatusActive,
	}
	s.state.Patients = append(s.state.Patients, patient)

	if err := s.persist(ctx, "patient", "create"); err != nil {
		return nil, err
	}
	return &patient, nil
}

// UpdatePatient merges the set fields into the matching record. An
// unknown id is a silent no-op and returns (nil, nil); lenience here is
// deliberate, not a failure.
func (s *Store) UpdatePatient(ctx context.Context, id string, req model.UpdatePatientRequest) (*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Patients {
		if s.state.Patients[i].ID != id {
			continue
		}
		p := &s.state.Patients[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Age != nil {
			p.Age = *req.Age
		}
		if req.Gender != nil {
			p.Gender = *req.Gender
		}
		if req.Contact != nil {
			p.Contact = *req.Contact
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
		if req.LastVisit != nil {
			p.LastVisit = *req.LastVisit
		}
		if req.Status != nil {
			p.Status = *req.Status
		}

		if err := s.persist(ctx, "patient", "update"); err != nil {
			return nil, err
		}
		updated := *p
		return &updated, nil
	}
	return nil, nil
}

// AddAppointment appends a new appointment with a fresh id. PatientID
// and DoctorID are soft references and are not checked against their
// collections.
func (s *Store) AddAppointment(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment := model.Appointment{
		ID:         newID("A"),
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		Time:       req.Time,
		Department: req.Department,
		Status:     req.Status,
	}
	s.state.Appointments = append(s.state.Appointments, appointment)

	if err := s.persist(ctx, "appointment", "create"); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateAppointment has the same merge-or-silent-no-op semantics as
// UpdatePatient.
func (s *Store) UpdateAppointment(ctx context.Context, id string, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Appointments {
		if s.state.Appointments[i].ID != id {
			continue
		}
		a := &s.state.Appointments[i]
		if req.PatientID != nil {
			a.PatientID = *req.PatientID
		}
		if req.DoctorID != nil {
			a.DoctorID = *req.DoctorID
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Time != nil {
			a.Time = *req.Time
		}
		if req.Department != nil {
			a.Department = *req.Department
		}
		if req.Status != nil {
			a.Status = *req.Status
		}

		if err := s.persist(ctx, "appointment", "update"); err != nil {
			return nil, err
		}
		updated := *a
		return &updated, nil
	}
	return nil, nil
}

// AddOrder appends a new order with a fresh id and a CreatedAt stamp.
// Total is trusted from the caller and not recomputed from the items.
func (s *Store) AddOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := model.Order{
		ID:             newID("O"),
		PatientID:      req.PatientID,
		Items:          append([]model.OrderItem(nil), req.Items...),
		Status:         req.Status,
		Total:          req.Total,
		CreatedAt:      time.Now().UTC(),
		DeliveryMethod: req.DeliveryMethod,
		PaymentMethod:  req.PaymentMethod,
	}
	s.state.Orders = append(s.state.Orders, order)

	if err := s.persist(ctx, "order", "create"); err != nil {
		return nil, err
	}
	copied := order
	copied.Items = append([]model.OrderItem(nil), order.Items...)
	return &copied, nil
}

// UpdatePlan replaces the current plan, forcing IsActive. Selecting the
// same plan twice is idempotent.
func (s *Store) UpdatePlan(ctx context.Context, plan model.PricingPlan) (model.PricingPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan.IsActive = true
	plan.Features = append([]string(nil), plan.Features...)
	s.state.CurrentPlan = plan

	if err := s.persist(ctx, "plan", "update"); err != nil {
		return model.PricingPlan{}, err
	}
	return s.currentPlanLocked(), nil
}

// NextOrderNumber advances the process-wide order counter by exactly
// one and returns the new value. It never returns the same value twice
// within a session; the counter survives restarts with the rest of the
// state.
func (s *Store) NextOrderNumber(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.OrderCounter++
	if err := s.persist(ctx, "counter", "increment"); err != nil {
		return 0, err
	}
	return s.state.OrderCounter, nil
}

func (s *Store) Patients() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Patient(nil), s.state.Patients...)
}

func (s *Store) Appointments() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Appointment(nil), s.state.Appointments...)
}

func (s *Store) Medicines() []model.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Medicine(nil), s.state.Medicines...)
}

func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.Order, len(s.state.Orders))
	for i, o := range s.state.Orders {
		orders[i] = o
		orders[i].Items = append([]model.OrderItem(nil), o.Items...)
	}
	return orders
}

func (s *Store) CurrentPlan() model.PricingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPlanLocked()
}

func (s *Store) OrderCounter() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.OrderCounter
}

func (s *Store) currentPlanLocked() model.PricingPlan {
	plan := s.state.CurrentPlan
	plan.Features = append([]string(nil), plan.Features...)
	return plan
}

// persist writes the full state under the store lock so a reload always
// observes a consistent snapshot.
func (s *Store) persist(ctx context.Context, entity, op string) error {
	start := time.Now()
	if err := s.persister.Save(ctx, &s.state); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	if s.metrics != nil {
		s.metrics.StoreMutations.WithLabelValues(entity, op).Inc()
		s.metrics.PersistDuration.Observe(time.Since(start).Seconds())
	}
	return nil
}
