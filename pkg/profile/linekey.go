// Package profile implements the tracing-and-aggregation engine: it
// correlates line, call, and return events from a host runtime into per-line
// and per-function timing split by the fast and slow execution backends.
package profile

import "time"

// LineKey identifies one traced statement. The text component keeps the
// same line number distinct across reloaded sources.
type LineKey struct {
	Line int
	File string
	Text string
}

// LineStats accumulates dispatch time for one LineKey, split by backend.
// Entries are created lazily on first observation and only ever grow.
type LineStats struct {
	Fast time.Duration
	Slow time.Duration
}

// CallRecord is one completed dispatch call.
type CallRecord struct {
	Fast     bool
	Duration time.Duration
}
