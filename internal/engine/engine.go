package engine

import "cashew-trade/internal/model"

// Engine turns a set of trading inputs into a decision record.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Evaluate runs every calculator over the inputs and assembles the result.
//
// Evaluate is total: every calculator is defined for all sanitized inputs,
// so there is no error path. Missing preconditions (no bid, no FX rate, no
// price) surface as zero-valued fields and a HOLD signal, not as failures.
func (e *Engine) Evaluate(in model.TradeInputs) model.TradeResult {
	in = in.Sanitize()

	m := ComputeMargin(in)
	signal, qty := model.SignalFromMargin(m.GrossMarginPercent)

	return model.TradeResult{
		LocalPriceUsd:         m.LocalPriceUsd,
		RelevantCostForMargin: m.RelevantCost,
		GrossMarginPercent:    m.GrossMarginPercent,
		SellSignal:            signal,
		SellQuantity:          qty,
		PotentialPurchaseQty:  ComputePurchaseCapacity(in),
		TargetBuyPrices:       ComputeTargetBuyPrices(in),
	}
}
