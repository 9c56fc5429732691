package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"cashew-trade/internal/model"
	"cashew-trade/internal/state"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --data inputs.csv")
	fmt.Println("  cli report --data inputs.csv --out report.csv [--save]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - inputs.csv is loosely labeled: one 'label,value' pair per line")
	fmt.Println("  - report writes the full multi-section decision report")
}

func newDesk() *state.Desk {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return state.NewDesk(logger, state.Options{})
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to labeled inputs CSV")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	desk := newDesk()
	in, res := importFile(desk, *dataPath)

	fmt.Printf("Local price: %.2f USD (at FX %.2f)\n", res.LocalPriceUsd, in.FxRateNairaToUsd)
	fmt.Printf("Relevant cost: %.2f USD\n", res.RelevantCostForMargin)
	fmt.Printf("Gross margin: %.2f%%\n", res.GrossMarginPercent)
	fmt.Printf("Decision: %s", res.SellSignal.Label())
	if res.SellQuantity > 0 {
		fmt.Printf(" (%d tons)", res.SellQuantity)
	}
	fmt.Println()
	fmt.Printf("Potential purchase: %.2f tons\n", res.PotentialPurchaseQty)
	fmt.Printf("Target buy prices (Naira): 6%%=%.2f 7%%=%.2f 8%%=%.2f\n",
		res.TargetBuyPrices.SixPercent,
		res.TargetBuyPrices.SevenPercent,
		res.TargetBuyPrices.EightPercent,
	)
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to labeled inputs CSV")
	outPath := fs.String("out", "report.csv", "Output report path")
	save := fs.Bool("save", false, "Save the evaluation to history before exporting")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	desk := newDesk()
	importFile(desk, *dataPath)

	if *save {
		if !desk.SaveHistory() {
			fmt.Println("history not saved: margin is zero")
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(*outPath, []byte(desk.Report()), 0o644); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote report to %s\n", *outPath)
}

func importFile(desk *state.Desk, path string) (model.TradeInputs, model.TradeResult) {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	in, res, matched := desk.ImportText(string(raw))
	if !matched {
		fmt.Println("no recognizable records in", path)
		os.Exit(1)
	}
	return in, res
}
