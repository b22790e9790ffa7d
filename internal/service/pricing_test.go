package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"cart-service/internal/entity"
)

func TestComputeNetPrice(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineItem
		want  float64
	}{
		{"nil", nil, 0},
		{"empty", []entity.LineItem{}, 0},
		{"single", []entity.LineItem{{Name: "wash", UnitPrice: 20, Quantity: 2}}, 40},
		{"several", []entity.LineItem{
			{Name: "wash", UnitPrice: 12.5, Quantity: 2},
			{Name: "dry", UnitPrice: 3.25, Quantity: 4},
		}, 38},
		{"zero quantity", []entity.LineItem{{Name: "wash", UnitPrice: 99, Quantity: 0}}, 0},
		{"no float drift", []entity.LineItem{{Name: "a", UnitPrice: 0.1, Quantity: 3}}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeNetPrice(tt.items))
		})
	}
}

func TestComputeNetPrice_IsOrderIndependent(t *testing.T) {
	items := []entity.LineItem{
		{UnitPrice: 1.1, Quantity: 3},
		{UnitPrice: 2.2, Quantity: 5},
		{UnitPrice: 0.7, Quantity: 11},
	}
	reversed := []entity.LineItem{items[2], items[1], items[0]}

	assert.Equal(t, ComputeNetPrice(items), ComputeNetPrice(reversed))
	assert.Equal(t, 22.0, ComputeNetPrice(items))
}

func TestComputeNetPrice_NonFinite(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineItem
		check func(float64) bool
	}{
		{"nan price", []entity.LineItem{{UnitPrice: 5, Quantity: 1}, {UnitPrice: math.NaN(), Quantity: 2}}, math.IsNaN},
		{"infinite price", []entity.LineItem{{UnitPrice: math.Inf(1), Quantity: 2}}, func(v float64) bool { return math.IsInf(v, 1) }},
		{"infinite times zero", []entity.LineItem{{UnitPrice: math.Inf(-1), Quantity: 0}}, math.IsNaN},
		{"overflow", []entity.LineItem{{UnitPrice: 1e308, Quantity: 10}}, func(v float64) bool { return math.IsInf(v, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got float64
			assert.NotPanics(t, func() { got = ComputeNetPrice(tt.items) })
			assert.True(t, tt.check(got), "got %v", got)
		})
	}
}
