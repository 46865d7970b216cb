package store_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/praateekmahajan/fsprof/pkg/profile"
	"github.com/praateekmahajan/fsprof/pkg/store"
)

func sessionWithCalls(t *testing.T, calls map[string][]profile.CallRecord) *profile.Session {
	t.Helper()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	snap := profile.Snapshot{
		Version: profile.SnapshotVersion,
		File:    "script.src",
		Start:   start,
		End:     start.Add(time.Second),
	}
	for name, records := range calls {
		snap.Funcs = append(snap.Funcs, profile.FuncSnapshot{Name: name, Calls: records})
	}
	s, err := profile.FromSnapshot(snap)
	require.NoError(t, err)
	return s
}

func TestCompare(t *testing.T) {
	old := sessionWithCalls(t, map[string][]profile.CallRecord{
		"op":     {{Fast: true, Duration: 100 * time.Millisecond}},
		"agg":    {{Fast: false, Duration: 200 * time.Millisecond}},
		"gone":   {{Fast: true, Duration: 10 * time.Millisecond}},
		"silent": nil,
	})
	cur := sessionWithCalls(t, map[string][]profile.CallRecord{
		"op":     {{Fast: true, Duration: 150 * time.Millisecond}}, // +50% regression
		"agg":    {{Fast: false, Duration: 202 * time.Millisecond}}, // +1% none
		"new":    {{Fast: true, Duration: 5 * time.Millisecond}},
		"silent": nil,
	})

	comparisons := store.Compare(old, cur)
	require.Len(t, comparisons, 2)

	require.Equal(t, "agg", comparisons[0].Function)
	require.Equal(t, "slow", comparisons[0].Backend)
	require.Equal(t, store.SeverityNone, comparisons[0].Severity)

	require.Equal(t, "op", comparisons[1].Function)
	require.Equal(t, "fast", comparisons[1].Backend)
	require.Equal(t, store.SeverityRegress, comparisons[1].Severity)
	require.InDelta(t, 50.0, comparisons[1].DeltaPct, 0.01)
}

func TestCompareSeverityBoundaries(t *testing.T) {
	mk := func(d time.Duration) *profile.Session {
		return sessionWithCalls(t, map[string][]profile.CallRecord{
			"op": {{Fast: true, Duration: d}},
		})
	}
	old := mk(time.Second)

	tests := []struct {
		name string
		cur  time.Duration
		want store.Severity
	}{
		{name: "unchanged", cur: time.Second, want: store.SeverityNone},
		{name: "minor drift", cur: 1100 * time.Millisecond, want: store.SeverityMinor},
		{name: "moderate drift", cur: 1200 * time.Millisecond, want: store.SeverityModerate},
		{name: "slowdown", cur: 1500 * time.Millisecond, want: store.SeverityRegress},
		{name: "speedup", cur: 500 * time.Millisecond, want: store.SeverityMajor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparisons := store.Compare(old, mk(tt.cur))
			require.Len(t, comparisons, 1)
			require.Equal(t, tt.want, comparisons[0].Severity)
		})
	}
}

func TestRenderComparison(t *testing.T) {
	old := sessionWithCalls(t, map[string][]profile.CallRecord{
		"op": {{Fast: true, Duration: 100 * time.Millisecond}},
	})
	cur := sessionWithCalls(t, map[string][]profile.CallRecord{
		"op": {{Fast: true, Duration: 200 * time.Millisecond}},
	})

	var buf bytes.Buffer
	store.RenderComparison(&buf, old, store.Compare(old, cur))

	out := buf.String()
	require.Contains(t, out, "Session Comparison")
	require.Contains(t, out, "op")
	require.Contains(t, out, "+100.0%")
	require.Contains(t, out, "1 potential regressions detected.")
}

func TestRenderComparisonNoRegressions(t *testing.T) {
	s := sessionWithCalls(t, map[string][]profile.CallRecord{
		"op": {{Fast: true, Duration: 100 * time.Millisecond}},
	})

	var buf bytes.Buffer
	store.RenderComparison(&buf, s, store.Compare(s, s))
	require.Contains(t, buf.String(), "No significant regressions detected.")
}
