package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"cashew-trade/internal/history"
)

// SQLiteRecorder appends saved decisions to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reporting tools can read while the app writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decisions (
			id                      INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp               INTEGER NOT NULL,
			local_price_naira       REAL,
			existing_stock_cnf_cost REAL,
			buyer_bid_usd           REAL,
			fx_rate_naira_to_usd    REAL,
			amount_remitted         REAL,
			existing_stock_quantity REAL,
			local_price_usd         REAL,
			relevant_cost           REAL,
			gross_margin_percent    REAL,
			sell_signal             TEXT,
			sell_quantity           INTEGER,
			potential_purchase_qty  REAL,
			target_six_percent      REAL,
			target_seven_percent    REAL,
			target_eight_percent    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_ts ON decisions(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDecision(e history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO decisions (
		timestamp,
		local_price_naira, existing_stock_cnf_cost, buyer_bid_usd,
		fx_rate_naira_to_usd, amount_remitted, existing_stock_quantity,
		local_price_usd, relevant_cost, gross_margin_percent,
		sell_signal, sell_quantity, potential_purchase_qty,
		target_six_percent, target_seven_percent, target_eight_percent
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Timestamp.Unix(),
		e.Inputs.LocalPriceNaira, e.Inputs.ExistingStockCnfCost, e.Inputs.BuyerBidUsd,
		e.Inputs.FxRateNairaToUsd, e.Inputs.AmountRemitted, e.Inputs.ExistingStockQuantity,
		e.Results.LocalPriceUsd, e.Results.RelevantCostForMargin, e.Results.GrossMarginPercent,
		string(e.Results.SellSignal), e.Results.SellQuantity, e.Results.PotentialPurchaseQty,
		e.Results.TargetBuyPrices.SixPercent, e.Results.TargetBuyPrices.SevenPercent, e.Results.TargetBuyPrices.EightPercent,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
