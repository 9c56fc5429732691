package engine

import "cashew-trade/internal/model"

// ComputePurchaseCapacity returns how many tons the remitted funds could
// buy at today's local price, or 0 when no price is set.
func ComputePurchaseCapacity(in model.TradeInputs) float64 {
	if in.LocalPriceNaira <= 0 {
		return 0
	}
	return in.AmountRemitted / in.LocalPriceNaira
}
