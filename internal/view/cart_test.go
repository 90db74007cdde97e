package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medidesk/frontdesk-api/internal/model"
)

func testCatalog() []model.Medicine {
	return []model.Medicine{
		{ID: "med1", Name: "Paracetamol", Price: 5.99},
		{ID: "med2", Name: "Amoxicillin", Price: 12.99},
	}
}

func TestCartTotal(t *testing.T) {
	prices := NewPriceIndex(testCatalog())

	tests := []struct {
		name  string
		items []model.OrderItem
		want  float64
	}{
		{
			name:  "empty cart totals zero",
			items: nil,
			want:  0,
		},
		{
			name:  "single line",
			items: []model.OrderItem{{MedicineID: "med1", Quantity: 2}},
			want:  11.98,
		},
		{
			name: "multiple lines",
			items: []model.OrderItem{
				{MedicineID: "med1", Quantity: 1},
				{MedicineID: "med2", Quantity: 3},
			},
			want: 5.99 + 3*12.99,
		},
		{
			name: "unknown medicine contributes zero",
			items: []model.OrderItem{
				{MedicineID: "med1", Quantity: 2},
				{MedicineID: "med-unknown", Quantity: 5},
			},
			want: 11.98,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CartTotal(prices, tt.items), 1e-9)
		})
	}
}

func TestCartTotalEmptyCatalog(t *testing.T) {
	prices := NewPriceIndex(nil)
	total := CartTotal(prices, []model.OrderItem{{MedicineID: "med1", Quantity: 4}})
	assert.Zero(t, total)
}
