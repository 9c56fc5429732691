// Package state holds the host-owned application state around the engine.
package state

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"cashew-trade/internal/engine"
	"cashew-trade/internal/history"
	"cashew-trade/internal/model"
	"cashew-trade/internal/recorder"
	"cashew-trade/internal/tabular"
)

// Desk owns the latest inputs and result, the decision history and the
// optional recorder. The engine itself is stateless; everything a host
// needs to keep between calls lives here.
type Desk struct {
	mu     sync.Mutex
	eng    *engine.Engine
	inputs model.TradeInputs
	result model.TradeResult
	log    *history.Log
	rec    recorder.Recorder
	logger zerolog.Logger
	title  string
}

type Options struct {
	// ReportTitle overrides the default report heading when non-empty.
	ReportTitle string
	// Recorder receives saved decisions. Nil means no persistence.
	Recorder recorder.Recorder
}

func NewDesk(logger zerolog.Logger, opts Options) *Desk {
	rec := opts.Recorder
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Desk{
		eng:    engine.New(),
		log:    history.NewLog(),
		rec:    rec,
		logger: logger.With().Str("component", "desk").Logger(),
		title:  opts.ReportTitle,
	}
}

// Evaluate stores the sanitized inputs and the fresh result, and returns
// both.
func (d *Desk) Evaluate(in model.TradeInputs) (model.TradeInputs, model.TradeResult) {
	in = in.Sanitize()
	res := d.eng.Evaluate(in)

	d.mu.Lock()
	d.inputs = in
	d.result = res
	d.mu.Unlock()

	return in, res
}

// ImportText merges labeled CSV text into the current inputs. When at least
// one record matches, the merged inputs are evaluated immediately and the
// state is updated; otherwise nothing changes.
func (d *Desk) ImportText(text string) (model.TradeInputs, model.TradeResult, bool) {
	d.mu.Lock()
	base := d.inputs
	d.mu.Unlock()

	merged, matched := tabular.Import(text, base)
	if !matched {
		return base, model.TradeResult{}, false
	}

	in, res := d.Evaluate(merged)
	return in, res, true
}

// Snapshot returns the latest inputs and result.
func (d *Desk) Snapshot() (model.TradeInputs, model.TradeResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inputs, d.result
}

// SaveHistory appends the latest evaluation to the history log and, when it
// is accepted, hands it to the recorder. Recorder failures are logged, not
// propagated: persistence is best-effort and the in-memory log already has
// the entry.
func (d *Desk) SaveHistory() bool {
	in, res := d.Snapshot()
	entry, saved := d.log.Save(in, res)
	if !saved {
		return false
	}

	if err := d.rec.RecordDecision(entry); err != nil {
		d.logger.Error().Err(err).Msg("record decision")
	}
	return true
}

// History returns the saved entries, newest first.
func (d *Desk) History() []history.Entry {
	return d.log.Entries()
}

// Report renders the export blob for the current state.
func (d *Desk) Report() string {
	in, res := d.Snapshot()
	return tabular.Report(d.title, time.Now(), in, res, d.log.Entries())
}
