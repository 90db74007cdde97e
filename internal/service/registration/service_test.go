package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), store.NewMemoryPersister(), nil)
	require.NoError(t, err)
	return NewService(s), s
}

func validIntake() model.OPDRegistration {
	return model.OPDRegistration{
		Name:          "Emma Wilson",
		Age:           34,
		Gender:        model.GenderFemale,
		Contact:       "+1 234-567-8900",
		Address:       "123 Main St, Test City",
		Department:    "cardiology",
		PreferredDate: "2024-04-02",
		PreferredTime: "10:00",
		Symptoms:      "chest pain",
	}
}

func TestRegisterCreatesPatientAndAppointment(t *testing.T) {
	svc, s := newTestService(t)

	result, err := svc.Register(context.Background(), validIntake())
	require.NoError(t, err)

	assert.Equal(t, model.RegistrationStatusSubmitted, result.Status)
	require.NotNil(t, result.Patient)
	require.NotNil(t, result.Appointment)

	assert.Equal(t, "Emma Wilson", result.Patient.Name)
	assert.Equal(t, model.PatientStatusActive, result.Patient.Status)

	// the appointment references the patient just created
	assert.Equal(t, result.Patient.ID, result.Appointment.PatientID)
	assert.Equal(t, "AUTO-ASSIGNED", result.Appointment.DoctorID)
	assert.Equal(t, model.AppointmentStatusScheduled, result.Appointment.Status)
	assert.Equal(t, "cardiology", result.Appointment.Department)
	assert.Equal(t, "2024-04-02", result.Appointment.Date)
	assert.Equal(t, "10:00", result.Appointment.Time)

	assert.Len(t, s.Patients(), 1)
	assert.Len(t, s.Appointments(), 1)
}

func TestRegisterRejectsOutOfRangeAge(t *testing.T) {
	svc, s := newTestService(t)

	intake := validIntake()
	intake.Age = 200

	result, err := svc.Register(context.Background(), intake)
	assert.Nil(t, result)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "age")

	// rejected attempts must not touch the store
	assert.Empty(t, s.Patients())
	assert.Empty(t, s.Appointments())
}

func TestRegisterReportsEveryViolatedField(t *testing.T) {
	svc, s := newTestService(t)

	result, err := svc.Register(context.Background(), model.OPDRegistration{
		Age:     -1,
		Gender:  model.Gender("unknown"),
		Contact: "123",
	})
	assert.Nil(t, result)

	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	for _, field := range []string{"name", "age", "gender", "contact", "address", "department", "preferredDate", "preferredTime", "symptoms"} {
		assert.Contains(t, verrs, field, "expected violation for %s", field)
	}

	assert.Empty(t, s.Patients())
	assert.Empty(t, s.Appointments())
}

func TestRegisterContactLength(t *testing.T) {
	svc, _ := newTestService(t)

	intake := validIntake()
	intake.Contact = "555-1234"

	_, err := svc.Register(context.Background(), intake)
	var verrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"valid contact number required"}, verrs["contact"])
}

func TestRegisterBoundaryAges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, age := range []int{0, 150} {
		intake := validIntake()
		intake.Age = age
		result, err := svc.Register(ctx, intake)
		require.NoError(t, err, "age %d should be accepted", age)
		assert.Equal(t, age, result.Patient.Age)
	}
}
