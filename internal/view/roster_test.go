package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/model"
)

func TestRoster(t *testing.T) {
	patients := []model.Patient{
		{
			ID: "P-1", Name: "John Doe", Age: 45, Gender: model.GenderMale,
			Contact: "+1 234-567-8900", LastVisit: "2024-03-15",
			Status: model.PatientStatusActive,
		},
	}
	doctors := []model.Doctor{
		{ID: "D-1", Name: "Dr. Sarah Johnson", Department: "Cardiology", Contact: "+1 234-567-8910", Status: "active"},
		{ID: "D-2", Name: "Dr. Michael Chen", Department: "Neurology", Contact: "+1 234-567-8911", Status: "active"},
	}

	t.Run("patients role", func(t *testing.T) {
		table := Roster(RolePatients, patients, doctors)
		assert.Equal(t, []string{"ID", "Name", "Age", "Gender", "Contact", "Last Visit", "Status"}, table.Columns)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, []string{"P-1", "John Doe", "45", "male", "+1 234-567-8900", "2024-03-15", "active"}, table.Rows[0])
	})

	t.Run("doctors role", func(t *testing.T) {
		table := Roster(RoleDoctors, patients, doctors)
		assert.Equal(t, []string{"ID", "Name", "Department", "Contact", "Status"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "Dr. Michael Chen", table.Rows[1][1])
	})

	t.Run("unknown role yields empty table", func(t *testing.T) {
		table := Roster(Role("admins"), patients, doctors)
		assert.Empty(t, table.Columns)
		assert.Empty(t, table.Rows)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		Roster(RolePatients, patients, doctors)
		assert.Equal(t, "John Doe", patients[0].Name)
		assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	})
}
