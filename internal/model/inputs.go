package model

import "math"

// TradeInputs is the canonical "inputs to the system" object.
//
// Naira amounts are local currency, USD amounts are USD-equivalent
// (CnF terms), quantities are tons.
type TradeInputs struct {
	// LocalPriceNaira is today's local-market unit price, Naira per ton.
	LocalPriceNaira float64 `json:"local_price_naira" yaml:"local_price_naira"`
	// ExistingStockCnfCost is the cost basis of inventory already held, USD.
	ExistingStockCnfCost float64 `json:"existing_stock_cnf_cost" yaml:"existing_stock_cnf_cost"`
	// BuyerBidUsd is a prospective buyer's offer, USD.
	BuyerBidUsd float64 `json:"buyer_bid_usd" yaml:"buyer_bid_usd"`
	// FxRateNairaToUsd is Naira per USD.
	FxRateNairaToUsd float64 `json:"fx_rate_naira_to_usd" yaml:"fx_rate_naira_to_usd"`
	// AmountRemitted is funds available for new purchases, Naira.
	AmountRemitted float64 `json:"amount_remitted" yaml:"amount_remitted"`
	// ExistingStockQuantity is inventory on hand, tons.
	ExistingStockQuantity float64 `json:"existing_stock_quantity" yaml:"existing_stock_quantity"`
}

// Sanitize returns a copy with every field coerced onto [0, +inf).
// NaN, infinities and negatives all become 0, so bad input degrades to
// "no data" and never reaches the calculators.
func (in TradeInputs) Sanitize() TradeInputs {
	return TradeInputs{
		LocalPriceNaira:       sanitizeValue(in.LocalPriceNaira),
		ExistingStockCnfCost:  sanitizeValue(in.ExistingStockCnfCost),
		BuyerBidUsd:           sanitizeValue(in.BuyerBidUsd),
		FxRateNairaToUsd:      sanitizeValue(in.FxRateNairaToUsd),
		AmountRemitted:        sanitizeValue(in.AmountRemitted),
		ExistingStockQuantity: sanitizeValue(in.ExistingStockQuantity),
	}
}

func sanitizeValue(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}
