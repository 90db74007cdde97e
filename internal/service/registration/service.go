package registration

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

// autoAssignedDoctor marks walk-in appointments whose doctor is picked
// later by the front desk.
const autoAssignedDoctor = "AUTO-ASSIGNED"

type RegistrationService interface {
	Register(ctx context.Context, reg model.OPDRegistration) (*model.RegistrationResult, error)
}

// Service gates OPD intake. An attempt either passes validation and
// creates the patient plus an appointment, or is rejected with field
// errors and nothing written.
type Service struct {
	store    *store.Store
	validate *validator.Validate
}

func NewService(s *store.Store) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{store: s, validate: v}
}

// Register validates the intake record and, on success, creates the
// patient and the appointment as one logical unit. There is no
// compensating rollback: if the appointment step failed, the patient
// would remain.
func (s *Service) Register(ctx context.Context, reg model.OPDRegistration) (*model.RegistrationResult, error) {
	if verrs := s.validateIntake(reg); len(verrs) > 0 {
		return nil, verrs
	}

	patient, err := s.store.AddPatient(ctx, model.CreatePatientRequest{
		Name:    reg.Name,
		Age:     reg.Age,
		Gender:  reg.Gender,
		Contact: reg.Contact,
		Address: reg.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	appointment, err := s.store.AddAppointment(ctx, model.CreateAppointmentRequest{
		PatientID:  patient.ID,
		DoctorID:   autoAssignedDoctor,
		Date:       reg.PreferredDate,
		Time:       reg.PreferredTime,
		Department: reg.Department,
		Status:     model.AppointmentStatusScheduled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return &model.RegistrationResult{
		Status:      model.RegistrationStatusSubmitted,
		Patient:     patient,
		Appointment: appointment,
	}, nil
}

func (s *Service) validateIntake(reg model.OPDRegistration) apperrors.ValidationErrors {
	err := s.validate.Struct(reg)
	if err == nil {
		return nil
	}

	verrs := make(apperrors.ValidationErrors)
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		verrs.Add("_", err.Error())
		return verrs
	}
	for _, fe := range fieldErrs {
		verrs.Add(fe.Field(), messageFor(fe))
	}
	return verrs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte", "lte":
		return "age must be between 0 and 150"
	case "min":
		return "valid contact number required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
