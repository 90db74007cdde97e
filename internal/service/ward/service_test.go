package ward

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/model"
)

func TestDefaultLayoutStats(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	layout := svc.Layout(ctx)
	require.Len(t, layout, 2)
	assert.Equal(t, "ICU", layout[0].Name)

	stats := svc.Stats(ctx)
	assert.Equal(t, model.BedStats{Total: 6, Available: 2, Occupied: 3, Maintenance: 1}, stats)
	assert.Equal(t, stats.Total, stats.Available+stats.Occupied+stats.Maintenance)
}

func TestStatsForCallerLayout(t *testing.T) {
	svc := NewService(nil)

	stats := svc.StatsFor(context.Background(), []model.Department{
		{
			Name: "Pediatrics",
			Beds: []model.Bed{
				{ID: "PED-01", Status: model.BedStatusAvailable},
				{ID: "PED-02", Status: model.BedStatusAvailable},
			},
		},
	})
	assert.Equal(t, model.BedStats{Total: 2, Available: 2}, stats)
}

func TestLayoutReturnsCopies(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	layout := svc.Layout(ctx)
	layout[0].Beds[0].Status = model.BedStatusAvailable

	assert.Equal(t, model.BedStatusOccupied, svc.Layout(ctx)[0].Beds[0].Status)
}
