// Package recorder persists saved decisions outside the process. The
// in-memory history log stays the source of truth; a recorder is a
// write-only side channel the host may configure.
package recorder

import "cashew-trade/internal/history"

// Recorder persists decision entries for later analysis.
type Recorder interface {
	RecordDecision(entry history.Entry) error
	Close() error
}
