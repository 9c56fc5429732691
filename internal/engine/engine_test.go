package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"cashew-trade/internal/model"
)

func TestComputeMargin_ConvertsLocalPrice(t *testing.T) {
	m := ComputeMargin(model.TradeInputs{
		LocalPriceNaira:  10000,
		FxRateNairaToUsd: 1500,
	})
	assert.InDelta(t, 6.667, m.LocalPriceUsd, 0.001)
}

func TestComputeMargin_ZeroFxRateMeansZeroUsdPrice(t *testing.T) {
	m := ComputeMargin(model.TradeInputs{
		LocalPriceNaira:  10000,
		FxRateNairaToUsd: 0,
	})
	assert.Zero(t, m.LocalPriceUsd)
}

func TestComputeMargin_RelevantCostIsMax(t *testing.T) {
	// Stock cost above converted price.
	m := ComputeMargin(model.TradeInputs{
		LocalPriceNaira:      9000,
		FxRateNairaToUsd:     1500,
		ExistingStockCnfCost: 8,
		BuyerBidUsd:          10,
	})
	assert.Equal(t, 8.0, m.RelevantCost)

	// Converted price above stock cost.
	m = ComputeMargin(model.TradeInputs{
		LocalPriceNaira:      15000,
		FxRateNairaToUsd:     1500,
		ExistingStockCnfCost: 8,
		BuyerBidUsd:          12,
	})
	assert.Equal(t, 10.0, m.RelevantCost)
}

func TestComputeMargin_NoBidMeansZeroMargin(t *testing.T) {
	m := ComputeMargin(model.TradeInputs{
		LocalPriceNaira:      15000,
		FxRateNairaToUsd:     1500,
		ExistingStockCnfCost: 8,
	})
	assert.Zero(t, m.GrossMarginPercent)
}

func TestComputeMargin_Percentage(t *testing.T) {
	// relevantCost=9.4, bid=10 => margin 6%.
	m := ComputeMargin(model.TradeInputs{
		ExistingStockCnfCost: 9.4,
		BuyerBidUsd:          10,
	})
	assert.InDelta(t, 6.0, m.GrossMarginPercent, 1e-9)
}

func TestSignalBoundaries(t *testing.T) {
	cases := []struct {
		margin float64
		signal model.SellSignal
		qty    int
	}{
		{5.999, model.SignalHoldManualOverride, 0},
		{6.0, model.SignalSell, 100},
		{6.999, model.SignalSell, 100},
		{7.0, model.SignalSell, 200},
		{8.999, model.SignalSell, 200},
		{9.0, model.SignalSell, 300},
		{42.0, model.SignalSell, 300},
		{-3.0, model.SignalHoldManualOverride, 0},
	}
	for _, tc := range cases {
		sig, qty := model.SignalFromMargin(tc.margin)
		assert.Equalf(t, tc.signal, sig, "margin %v", tc.margin)
		assert.Equalf(t, tc.qty, qty, "margin %v", tc.margin)
	}
}

func TestSellQuantityNonDecreasing(t *testing.T) {
	prev := 0
	for margin := -2.0; margin <= 15.0; margin += 0.125 {
		_, qty := model.SignalFromMargin(margin)
		assert.GreaterOrEqualf(t, qty, prev, "margin %v", margin)
		prev = qty
	}
}

func TestComputeTargetBuyPrices(t *testing.T) {
	prices := ComputeTargetBuyPrices(model.TradeInputs{
		BuyerBidUsd:      10,
		FxRateNairaToUsd: 1500,
	})
	assert.InDelta(t, 14100, prices.SixPercent, 1e-9) // 10 * 0.94 * 1500
	assert.InDelta(t, 13950, prices.SevenPercent, 1e-9)
	assert.InDelta(t, 13800, prices.EightPercent, 1e-9)
}

func TestComputeTargetBuyPrices_GuardIsAllOrNothing(t *testing.T) {
	assert.Equal(t, model.TargetBuyPrices{}, ComputeTargetBuyPrices(model.TradeInputs{BuyerBidUsd: 10}))
	assert.Equal(t, model.TargetBuyPrices{}, ComputeTargetBuyPrices(model.TradeInputs{FxRateNairaToUsd: 1500}))
	assert.Equal(t, model.TargetBuyPrices{}, ComputeTargetBuyPrices(model.TradeInputs{}))
}

func TestComputePurchaseCapacity(t *testing.T) {
	qty := ComputePurchaseCapacity(model.TradeInputs{
		AmountRemitted:  500000,
		LocalPriceNaira: 1000,
	})
	assert.Equal(t, 500.0, qty)

	assert.Zero(t, ComputePurchaseCapacity(model.TradeInputs{AmountRemitted: 500000}))
}

func TestEvaluate_AssemblesResult(t *testing.T) {
	eng := New()
	res := eng.Evaluate(model.TradeInputs{
		LocalPriceNaira:      10000,
		ExistingStockCnfCost: 9,
		BuyerBidUsd:          10,
		FxRateNairaToUsd:     1500,
		AmountRemitted:       500000,
	})

	assert.InDelta(t, 6.667, res.LocalPriceUsd, 0.001)
	assert.Equal(t, 9.0, res.RelevantCostForMargin)
	assert.InDelta(t, 10.0, res.GrossMarginPercent, 1e-9)
	assert.Equal(t, model.SignalSell, res.SellSignal)
	assert.Equal(t, 300, res.SellQuantity)
	assert.Equal(t, 50.0, res.PotentialPurchaseQty)
	assert.InDelta(t, 14100, res.TargetBuyPrices.SixPercent, 1e-9)
}

// The relevant-cost invariant holds across a spread of inputs.
func TestEvaluate_RelevantCostInvariant(t *testing.T) {
	eng := New()
	for _, in := range []model.TradeInputs{
		{},
		{LocalPriceNaira: 1, FxRateNairaToUsd: 1},
		{ExistingStockCnfCost: 100},
		{LocalPriceNaira: 2_000_000, FxRateNairaToUsd: 1500, ExistingStockCnfCost: 1200, BuyerBidUsd: 1400},
	} {
		res := eng.Evaluate(in)
		assert.Equal(t, math.Max(in.ExistingStockCnfCost, res.LocalPriceUsd), res.RelevantCostForMargin)
	}
}

func TestEvaluate_IsTotalOverBadInput(t *testing.T) {
	eng := New()
	res := eng.Evaluate(model.TradeInputs{
		LocalPriceNaira:      math.NaN(),
		ExistingStockCnfCost: math.Inf(1),
		BuyerBidUsd:          -5,
		FxRateNairaToUsd:     math.Inf(-1),
	})

	assert.False(t, math.IsNaN(res.GrossMarginPercent))
	assert.Equal(t, model.TradeResult{SellSignal: model.SignalHoldManualOverride}, res)
}

func TestSanitize(t *testing.T) {
	in := model.TradeInputs{
		LocalPriceNaira:       -1,
		ExistingStockCnfCost:  math.NaN(),
		BuyerBidUsd:           math.Inf(1),
		FxRateNairaToUsd:      1500,
		AmountRemitted:        0,
		ExistingStockQuantity: 30,
	}
	got := in.Sanitize()
	assert.Equal(t, model.TradeInputs{FxRateNairaToUsd: 1500, ExistingStockQuantity: 30}, got)
}
