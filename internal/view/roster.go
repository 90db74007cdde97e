package view

import (
	"strconv"

	"github.com/medidesk/frontdesk-api/internal/model"
)

// Role selects which roster dataset and column set to present.
type Role string

const (
	RolePatients Role = "patients"
	RoleDoctors  Role = "doctors"
)

// Table is a role-filtered tabular projection ready for rendering.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

var (
	patientColumns = []string{"ID", "Name", "Age", "Gender", "Contact", "Last Visit", "Status"}
	doctorColumns  = []string{"ID", "Name", "Department", "Contact", "Status"}
)

// Roster maps (role, raw rows) to (columns, rows) without mutating the
// underlying data. An unknown role yields an empty table.
func Roster(role Role, patients []model.Patient, doctors []model.Doctor) Table {
	switch role {
	case RolePatients:
		rows := make([][]string, 0, len(patients))
		for _, p := range patients {
			rows = append(rows, []string{
				p.ID, p.Name, strconv.Itoa(p.Age), string(p.Gender), p.Contact, p.LastVisit, string(p.Status),
			})
		}
		return Table{Columns: patientColumns, Rows: rows}
	case RoleDoctors:
		rows := make([][]string, 0, len(doctors))
		for _, d := range doctors {
			rows = append(rows, []string{d.ID, d.Name, d.Department, d.Contact, d.Status})
		}
		return Table{Columns: doctorColumns, Rows: rows}
	default:
		return Table{}
	}
}
