package engine

import (
	"math"

	"cashew-trade/internal/model"
)

// Margin is the converted local price, the conservative cost basis and the
// gross margin for one set of inputs.
type Margin struct {
	LocalPriceUsd      float64
	RelevantCost       float64
	GrossMarginPercent float64
}

// ComputeMargin converts the local Naira price into USD and derives the
// gross margin against the buyer's bid.
//
// The relevant cost is the higher of the existing stock cost and today's
// converted price. With no FX rate the USD price is 0; with no bid the
// margin is defined as 0 rather than undefined, so downstream logic never
// distinguishes "no bid" from "zero margin".
func ComputeMargin(in model.TradeInputs) Margin {
	localPriceUsd := 0.0
	if in.FxRateNairaToUsd > 0 {
		localPriceUsd = in.LocalPriceNaira / in.FxRateNairaToUsd
	}

	relevantCost := math.Max(in.ExistingStockCnfCost, localPriceUsd)

	grossMargin := 0.0
	if in.BuyerBidUsd > 0 {
		grossMargin = (in.BuyerBidUsd - relevantCost) / in.BuyerBidUsd * 100
	}

	return Margin{
		LocalPriceUsd:      localPriceUsd,
		RelevantCost:       relevantCost,
		GrossMarginPercent: grossMargin,
	}
}
