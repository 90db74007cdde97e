// Package view holds the derived-view functions: pure, stateless
// computations over store snapshots. They own no state, are linear in
// collection size, and are recomputed on every read.
package view

import "github.com/medidesk/frontdesk-api/internal/model"

// PriceIndex maps a medicine id to its unit price.
type PriceIndex map[string]float64

// NewPriceIndex builds a lookup over a medicine catalog snapshot.
func NewPriceIndex(medicines []model.Medicine) PriceIndex {
	index := make(PriceIndex, len(medicines))
	for _, m := range medicines {
		index[m.ID] = m.Price
	}
	return index
}

// CartTotal sums price x quantity over the cart lines. A line whose
// medicine id does not resolve contributes 0; it is never an error.
func CartTotal(prices PriceIndex, items []model.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += prices[item.MedicineID] * float64(item.Quantity)
	}
	return total
}
