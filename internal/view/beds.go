package view

import "github.com/medidesk/frontdesk-api/internal/model"

// BedStats counts beds by status across a ward layout with a single
// linear scan. Total always equals the sum of the three status counts;
// an empty layout yields all zeros.
func BedStats(departments []model.Department) model.BedStats {
	var stats model.BedStats
	for _, dept := range departments {
		for _, bed := range dept.Beds {
			switch bed.Status {
			case model.BedStatusAvailable:
				stats.Available++
			case model.BedStatusOccupied:
				stats.Occupied++
			case model.BedStatusMaintenance:
				stats.Maintenance++
			}
		}
	}
	stats.Total = stats.Available + stats.Occupied + stats.Maintenance
	return stats
}
