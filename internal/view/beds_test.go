package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medidesk/frontdesk-api/internal/model"
)

func TestBedStats(t *testing.T) {
	tests := []struct {
		name        string
		departments []model.Department
		want        model.BedStats
	}{
		{
			name:        "empty layout yields zeros",
			departments: nil,
			want:        model.BedStats{},
		},
		{
			name: "department with no beds",
			departments: []model.Department{
				{Name: "Empty Wing"},
			},
			want: model.BedStats{},
		},
		{
			name: "mixed layout",
			departments: []model.Department{
				{
					Name: "ICU",
					Beds: []model.Bed{
						{ID: "ICU-01", Status: model.BedStatusOccupied},
						{ID: "ICU-02", Status: model.BedStatusAvailable},
						{ID: "ICU-03", Status: model.BedStatusMaintenance},
					},
				},
				{
					Name: "General Ward",
					Beds: []model.Bed{
						{ID: "GW-01", Status: model.BedStatusOccupied},
						{ID: "GW-02", Status: model.BedStatusOccupied},
						{ID: "GW-03", Status: model.BedStatusAvailable},
					},
				},
			},
			want: model.BedStats{Total: 6, Available: 2, Occupied: 3, Maintenance: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BedStats(tt.departments)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Available+got.Occupied+got.Maintenance)
		})
	}
}
