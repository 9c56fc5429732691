package model

// TargetBuyPrices holds the Naira purchase price that would yield each
// target margin against the current bid.
type TargetBuyPrices struct {
	SixPercent   float64 `json:"six_percent"`
	SevenPercent float64 `json:"seven_percent"`
	EightPercent float64 `json:"eight_percent"`
}

// TradeResult is the full outcome of one evaluation. It is derived data:
// computed fresh on every call and never mutated afterwards.
type TradeResult struct {
	LocalPriceUsd         float64         `json:"local_price_usd"`
	RelevantCostForMargin float64         `json:"relevant_cost_for_margin"`
	GrossMarginPercent    float64         `json:"gross_margin_percent"`
	SellSignal            SellSignal      `json:"sell_signal"`
	SellQuantity          int             `json:"sell_quantity"`
	PotentialPurchaseQty  float64         `json:"potential_purchase_qty"`
	TargetBuyPrices       TargetBuyPrices `json:"target_buy_prices"`
}
