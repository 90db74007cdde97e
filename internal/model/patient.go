package model

type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient is a front-desk patient record. IDs are minted by the store,
// never supplied by callers. Records are soft-lifecycled through Status
// and never physically deleted.
type Patient struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Age       int           `json:"age"`
	Gender    Gender        `json:"gender"`
	Contact   string        `json:"contact"`
	Address   string        `json:"address"`
	LastVisit string        `json:"lastVisit,omitempty"`
	Status    PatientStatus `json:"status"`
}

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	Age       int    `json:"age" binding:"gte=0"`
	Gender    Gender `json:"gender" binding:"required,oneof=male female other"`
	Contact   string `json:"contact" binding:"required"`
	Address   string `json:"address" binding:"required"`
	LastVisit string `json:"lastVisit"`
}

type UpdatePatientRequest struct {
	Name      *string        `json:"name"`
	Age       *int           `json:"age" binding:"omitempty,gte=0"`
	Gender    *Gender        `json:"gender" binding:"omitempty,oneof=male female other"`
	Contact   *string        `json:"contact"`
	Address   *string        `json:"address"`
	LastVisit *string        `json:"lastVisit"`
	Status    *PatientStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}
