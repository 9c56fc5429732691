package recorder

import "cashew-trade/internal/history"

// NoopRecorder is used when SQLite persistence is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDecision(_ history.Entry) error { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
