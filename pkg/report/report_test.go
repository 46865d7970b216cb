package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/praateekmahajan/fsprof/pkg/profile"
	"github.com/praateekmahajan/fsprof/pkg/report"
)

func frozenSession(t *testing.T) *profile.Session {
	t.Helper()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s, err := profile.FromSnapshot(profile.Snapshot{
		Version: profile.SnapshotVersion,
		File:    "script.src",
		Start:   start,
		End:     start.Add(1500 * time.Millisecond),
		Lines: []profile.LineSnapshot{
			{Key: profile.LineKey{Line: 1, File: "script.src", Text: "x = op(y)"}, Fast: 10 * time.Millisecond},
			{Key: profile.LineKey{Line: 2, File: "script.src", Text: "z = df.sum()"}, Slow: 50 * time.Millisecond},
		},
		Funcs: []profile.FuncSnapshot{
			{Name: "DataFrame.sum", Calls: []profile.CallRecord{
				{Fast: false, Duration: 20 * time.Millisecond},
				{Fast: false, Duration: 30 * time.Millisecond},
			}},
			{Name: "op", Calls: []profile.CallRecord{{Fast: true, Duration: 10 * time.Millisecond}}},
		},
	})
	require.NoError(t, err)
	return s
}

func emptySession(t *testing.T) *profile.Session {
	t.Helper()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s, err := profile.FromSnapshot(profile.Snapshot{
		Version: profile.SnapshotVersion,
		File:    "script.src",
		Start:   start,
		End:     start,
	})
	require.NoError(t, err)
	return s
}

func TestPerLine(t *testing.T) {
	var buf bytes.Buffer
	report.PerLine(&buf, frozenSession(t))

	out := buf.String()
	require.Contains(t, out, "Total time elapsed: 1.500 seconds")
	require.Contains(t, out, "x = op(y)")
	require.Contains(t, out, "z = df.sum()")
	require.Contains(t, out, "0.010000000")
	require.Contains(t, out, "0.050000000")
	// Never-hit backends stay blank rather than rendering zero.
	require.NotContains(t, out, "0.000000000")
}

func TestPerFunction(t *testing.T) {
	var buf bytes.Buffer
	report.PerFunction(&buf, frozenSession(t))

	out := buf.String()
	require.Contains(t, out, "Total time elapsed: 1.500 seconds")
	require.Contains(t, out, "1 fast function calls in 0.010 seconds")
	require.Contains(t, out, "2 slow function calls in 0.050 seconds")
	require.Contains(t, out, "DataFrame.sum")
	require.Contains(t, out, "op")
	require.Contains(t, out, "0.025") // slow percall for DataFrame.sum
}

func TestReportsAreIdempotent(t *testing.T) {
	s := frozenSession(t)

	var first, second bytes.Buffer
	report.PerLine(&first, s)
	report.PerLine(&second, s)
	require.Equal(t, first.String(), second.String())

	first.Reset()
	second.Reset()
	report.PerFunction(&first, s)
	report.PerFunction(&second, s)
	require.Equal(t, first.String(), second.String())
}

func TestReportsRenderEmptySession(t *testing.T) {
	s := emptySession(t)

	var buf bytes.Buffer
	report.PerLine(&buf, s)
	require.Contains(t, buf.String(), "Total time elapsed: 0.000 seconds")

	buf.Reset()
	report.PerFunction(&buf, s)
	require.Contains(t, buf.String(), "0 fast function calls in 0.000 seconds")
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	report.Detail(&buf, frozenSession(t))

	out := buf.String()
	require.Contains(t, out, "Function Latency Detail")
	require.Contains(t, out, "DataFrame.sum")
	require.Contains(t, out, "fast")
	require.Contains(t, out, "slow")
	require.Contains(t, out, "30ms") // slow P95 for DataFrame.sum

	var again bytes.Buffer
	report.Detail(&again, frozenSession(t))
	require.Equal(t, out, again.String())
}
