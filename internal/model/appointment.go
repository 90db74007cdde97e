package model

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment references its patient and doctor by id only. The
// references are lookups, not ownership: a dangling id resolves to an
// empty result, never an error.
type Appointment struct {
	ID         string            `json:"id"`
	PatientID  string            `json:"patientId"`
	DoctorID   string            `json:"doctorId"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Department string            `json:"department"`
	Status     AppointmentStatus `json:"status"`
}

type CreateAppointmentRequest struct {
	PatientID  string            `json:"patientId" binding:"required"`
	DoctorID   string            `json:"doctorId" binding:"required"`
	Date       string            `json:"date" binding:"required"`
	Time       string            `json:"time" binding:"required"`
	Department string            `json:"department" binding:"required"`
	Status     AppointmentStatus `json:"status" binding:"required,oneof=scheduled in-progress completed cancelled"`
}

type UpdateAppointmentRequest struct {
	PatientID  *string            `json:"patientId"`
	DoctorID   *string            `json:"doctorId"`
	Date       *string            `json:"date"`
	Time       *string            `json:"time"`
	Department *string            `json:"department"`
	Status     *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled"`
}
