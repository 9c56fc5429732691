// Package history keeps the in-memory record of past trading decisions.
package history

import (
	"sync"
	"time"

	"cashew-trade/internal/model"
)

// Entry is one saved decision. Inputs and Results are value snapshots
// taken at save time and never touched again.
type Entry struct {
	Timestamp time.Time         `json:"timestamp"`
	Inputs    model.TradeInputs `json:"inputs"`
	Results   model.TradeResult `json:"results"`
}

// Log is an append-only, newest-first sequence of entries. It is the only
// mutable structure in the core, so it guards itself with a mutex; every
// read hands back copies.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

// Save prepends a snapshot of the given inputs and results.
//
// A zero gross margin means "nothing was calculated", so those saves are
// dropped. This also drops a legitimately computed exact-zero margin; the
// rule is kept as-is because the tool has always behaved this way.
// Returns the recorded entry and whether one was recorded.
func (l *Log) Save(inputs model.TradeInputs, results model.TradeResult) (Entry, bool) {
	if results.GrossMarginPercent == 0 {
		return Entry{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Timestamp: l.now(),
		Inputs:    inputs,
		Results:   results,
	}
	l.entries = append([]Entry{entry}, l.entries...)
	return entry, true
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
