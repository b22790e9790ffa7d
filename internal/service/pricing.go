package service

import (
	"math"

	"github.com/shopspring/decimal"

	"cart-service/internal/entity"
)

// ComputeNetPrice sums unit price times quantity over items. A NaN or infinite
// unit price is carried into the result instead of being summed exactly.
func ComputeNetPrice(items []entity.LineItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		if math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0) {
			return floatNetPrice(items)
		}
		total = total.Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.InexactFloat64()
}

func floatNetPrice(items []entity.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
