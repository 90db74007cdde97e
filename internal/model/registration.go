package model

type RegistrationStatus string

const (
	RegistrationStatusSubmitted RegistrationStatus = "submitted"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
)

// OPDRegistration is the flat intake record gathered by the walk-in
// registration form. It is validated before anything reaches the store.
type OPDRegistration struct {
	Name          string `json:"name" validate:"required"`
	Age           int    `json:"age" validate:"gte=0,lte=150"`
	Gender        Gender `json:"gender" validate:"required,oneof=male female other"`
	Contact       string `json:"contact" validate:"required,min=10"`
	Address       string `json:"address" validate:"required"`
	Department    string `json:"department" validate:"required"`
	PreferredDate string `json:"preferredDate" validate:"required"`
	PreferredTime string `json:"preferredTime" validate:"required"`
	Symptoms      string `json:"symptoms" validate:"required"`
}

// RegistrationResult is what a successful registration attempt yields:
// the patient and appointment created as one logical unit.
type RegistrationResult struct {
	Status      RegistrationStatus `json:"status"`
	Patient     *Patient           `json:"patient,omitempty"`
	Appointment *Appointment       `json:"appointment,omitempty"`
}
