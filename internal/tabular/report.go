package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashew-trade/internal/history"
	"cashew-trade/internal/model"
)

const DefaultReportTitle = "Cashew Trading Decision Tool - Report"

const timestampLayout = "2006-01-02 15:04:05"

// Report serializes inputs, the latest result and the decision history into
// the fixed multi-section text blob. Section order and labels are part of
// the format and never vary with the values.
//
// The output is not round-trippable through Import: Import keys off labeled
// rows while the report uses fixed section headers.
func Report(title string, now time.Time, in model.TradeInputs, res model.TradeResult, entries []history.Entry) string {
	if title == "" {
		title = DefaultReportTitle
	}

	var b strings.Builder

	b.WriteString(title + "\n")
	b.WriteString("Generated on," + now.Format(timestampLayout) + "\n\n")

	b.WriteString("INPUTS\n")
	b.WriteString("Local Price (Naira)," + rawNum(in.LocalPriceNaira) + "\n")
	b.WriteString("Existing Stock CnF Cost (USD)," + rawNum(in.ExistingStockCnfCost) + "\n")
	b.WriteString("Buyer's Bid (USD)," + rawNum(in.BuyerBidUsd) + "\n")
	b.WriteString("FX Rate (Naira to USD)," + rawNum(in.FxRateNairaToUsd) + "\n")
	b.WriteString("Amount Remitted (Naira)," + rawNum(in.AmountRemitted) + "\n")
	b.WriteString("Existing Stock Quantity (Tons)," + rawNum(in.ExistingStockQuantity) + "\n\n")

	b.WriteString("RESULTS\n")
	b.WriteString("Local Price (USD)," + money(res.LocalPriceUsd) + "\n")
	b.WriteString("Relevant Cost for Margin," + money(res.RelevantCostForMargin) + "\n")
	b.WriteString("Gross Margin (%)," + money(res.GrossMarginPercent) + "\n")
	b.WriteString("Decision," + res.SellSignal.Label() + "\n")
	b.WriteString("Recommended Sell Quantity (Tons)," + strconv.Itoa(res.SellQuantity) + "\n")
	b.WriteString("Potential Purchase Quantity (Tons)," + money(res.PotentialPurchaseQty) + "\n\n")

	b.WriteString("TARGET BUY PRICES (NAIRA)\n")
	b.WriteString("For 6% Margin," + money(res.TargetBuyPrices.SixPercent) + "\n")
	b.WriteString("For 7% Margin," + money(res.TargetBuyPrices.SevenPercent) + "\n")
	b.WriteString("For 8% Margin," + money(res.TargetBuyPrices.EightPercent) + "\n\n\n")

	if len(entries) > 0 {
		b.WriteString("TRANSACTION HISTORY\n")
		b.WriteString("Date,Local Price (Naira),Stock Cost (USD),Bid (USD),FX Rate,Gross Margin (%),Decision\n")
		for _, e := range entries {
			b.WriteString(historyRow(e) + "\n")
		}
	}

	return b.String()
}

func historyRow(e history.Entry) string {
	decision := e.Results.SellSignal.Label()
	if e.Results.SellQuantity > 0 {
		decision = fmt.Sprintf("%s (%d tons)", decision, e.Results.SellQuantity)
	}
	cols := []string{
		e.Timestamp.Format(timestampLayout),
		rawNum(e.Inputs.LocalPriceNaira),
		rawNum(e.Inputs.ExistingStockCnfCost),
		rawNum(e.Inputs.BuyerBidUsd),
		rawNum(e.Inputs.FxRateNairaToUsd),
		money(e.Results.GrossMarginPercent),
		decision,
	}
	return strings.Join(cols, ",")
}

// money renders a value with exactly two decimal places.
func money(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

// rawNum renders an input the way it was entered: no padding, no trailing
// zeros.
func rawNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
