// Package tabular maps loosely-labeled CSV text onto trading inputs and
// formats evaluations back out as a sectioned report.
package tabular

import (
	"math"
	"strconv"
	"strings"

	"cashew-trade/internal/model"
)

// fieldMatcher binds a set of label keywords to one input field. Order
// matters: the first matching set per record wins.
type fieldMatcher struct {
	keywords []string
	assign   func(*model.TradeInputs, float64)
}

var fieldMatchers = []fieldMatcher{
	{[]string{"local price", "naira price"}, func(in *model.TradeInputs, v float64) { in.LocalPriceNaira = v }},
	{[]string{"stock cost", "cnf cost"}, func(in *model.TradeInputs, v float64) { in.ExistingStockCnfCost = v }},
	{[]string{"buyer", "bid"}, func(in *model.TradeInputs, v float64) { in.BuyerBidUsd = v }},
	{[]string{"fx rate", "exchange"}, func(in *model.TradeInputs, v float64) { in.FxRateNairaToUsd = v }},
	{[]string{"remitted", "funds"}, func(in *model.TradeInputs, v float64) { in.AmountRemitted = v }},
	{[]string{"quantity", "inventory"}, func(in *model.TradeInputs, v float64) { in.ExistingStockQuantity = v }},
}

// Import scans raw CSV-ish text for labeled values and merges them into a
// copy of base. Each line is split on commas into label,value (extra
// columns ignored); labels match case-insensitively by substring.
//
// Malformed lines (fewer than two columns, non-numeric value, no keyword
// hit) are skipped, never an error. Later lines for the same field
// overwrite earlier ones. The returned bool reports whether anything
// matched; when it is false the base inputs come back untouched.
func Import(text string, base model.TradeInputs) (model.TradeInputs, bool) {
	merged := base
	matched := false

	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(parts[0]))
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}

		for _, m := range fieldMatchers {
			if labelMatches(label, m.keywords) {
				m.assign(&merged, value)
				matched = true
				break
			}
		}
	}

	if !matched {
		return base, false
	}
	return merged, true
}

func labelMatches(label string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}
