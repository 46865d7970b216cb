package profile

import (
	"sort"
	"time"
)

// LineRow is one row of the per-line view.
type LineRow struct {
	Line int
	Text string
	Fast time.Duration
	Slow time.Duration
}

// FunctionCalls partitions one identifier's completed calls by backend,
// preserving call order within each backend.
type FunctionCalls struct {
	Fast []time.Duration
	Slow []time.Duration
}

// PerLine returns the per-line view, sorted ascending by line number with
// ties broken by line text. It is a pure projection: repeated calls over an
// unchanged session return identical results.
func (s *Session) PerLine() []LineRow {
	rows := make([]LineRow, 0, len(s.lines))
	for key, stats := range s.lines {
		rows = append(rows, LineRow{Line: key.Line, Text: key.Text, Fast: stats.Fast, Slow: stats.Slow})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Line != rows[j].Line {
			return rows[i].Line < rows[j].Line
		}
		return rows[i].Text < rows[j].Text
	})
	return rows
}

// PerFunction returns the per-function view. The map and its slices are
// freshly built on every call; mutating them does not touch the session.
func (s *Session) PerFunction() map[string]FunctionCalls {
	view := make(map[string]FunctionCalls, len(s.funcs))
	for name, calls := range s.funcs {
		var fc FunctionCalls
		for _, c := range calls {
			if c.Fast {
				fc.Fast = append(fc.Fast, c.Duration)
			} else {
				fc.Slow = append(fc.Slow, c.Duration)
			}
		}
		view[name] = fc
	}
	return view
}
