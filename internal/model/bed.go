package model

type BedStatus string

const (
	BedStatusAvailable   BedStatus = "Available"
	BedStatusOccupied    BedStatus = "Occupied"
	BedStatusMaintenance BedStatus = "Maintenance"
)

type Bed struct {
	ID            string    `json:"id"`
	Status        BedStatus `json:"status"`
	Patient       string    `json:"patient,omitempty"`
	AdmissionDate string    `json:"admissionDate,omitempty"`
}

type Department struct {
	Name string `json:"name"`
	Beds []Bed  `json:"beds"`
}

// BedStats is a linear-scan aggregate over a ward layout. Total always
// equals Available+Occupied+Maintenance.
type BedStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}
