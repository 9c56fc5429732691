package engine

import "cashew-trade/internal/model"

// Target margin tiers quoted to suppliers.
const (
	targetMarginSix   = 0.06
	targetMarginSeven = 0.07
	targetMarginEight = 0.08
)

// ComputeTargetBuyPrices returns the Naira purchase price that would yield
// each target margin at the current bid and FX rate.
//
// The guard is all-or-nothing: if either the bid or the FX rate is missing
// the whole triple is zero, never a partial result.
func ComputeTargetBuyPrices(in model.TradeInputs) model.TargetBuyPrices {
	if in.BuyerBidUsd <= 0 || in.FxRateNairaToUsd <= 0 {
		return model.TargetBuyPrices{}
	}
	return model.TargetBuyPrices{
		SixPercent:   targetBuyPrice(in, targetMarginSix),
		SevenPercent: targetBuyPrice(in, targetMarginSeven),
		EightPercent: targetBuyPrice(in, targetMarginEight),
	}
}

func targetBuyPrice(in model.TradeInputs, margin float64) float64 {
	return in.BuyerBidUsd * (1 - margin) * in.FxRateNairaToUsd
}
