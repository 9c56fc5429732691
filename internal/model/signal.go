package model

// SellSignal is the discrete trading recommendation for an evaluation.
// Keep these values stable; they are intended for JSON output.
type SellSignal string

const (
	SignalHoldManualOverride SellSignal = "HOLD_MANUAL_OVERRIDE"
	SignalSell               SellSignal = "SELL"
)

// Label is the long-form text used in reports and the history table.
func (s SellSignal) Label() string {
	if s == SignalHoldManualOverride {
		return "HOLD - Manual Override Required"
	}
	return string(s)
}

// SignalFromMargin maps a gross margin percentage onto a signal and a
// recommended sell quantity in tons. Bands are half-open with inclusive
// lower bounds: exactly 6, 7 and 9 land in the higher band.
func SignalFromMargin(grossMarginPercent float64) (SellSignal, int) {
	switch {
	case grossMarginPercent < 6:
		return SignalHoldManualOverride, 0
	case grossMarginPercent < 7:
		return SignalSell, 100
	case grossMarginPercent < 9:
		return SignalSell, 200
	default:
		return SignalSell, 300
	}
}
