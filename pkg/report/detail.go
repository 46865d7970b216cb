package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/praateekmahajan/fsprof/pkg/profile"
)

// Detail writes a latency breakdown per function: call counts, duration
// percentiles, and a sparkline of call durations for each backend.
func Detail(w io.Writer, s *profile.Session) {
	view := s.PerFunction()

	fmt.Fprintln(w, titleStyle.Render("Function Latency Detail"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("═", 84)))
	fmt.Fprintf(w, "  %s %s %s %s %s %s %s\n",
		headerStyle.Render("FUNCTION            "),
		headerStyle.Render("BACKEND"),
		headerStyle.Render("CALLS "),
		headerStyle.Render("P50        "),
		headerStyle.Render("P95        "),
		headerStyle.Render("P99        "),
		headerStyle.Render("TREND           "))
	fmt.Fprintln(w, "  "+dimStyle.Render(strings.Repeat("─", 84)))

	for _, name := range sortedNames(view) {
		calls := view[name]
		writeDetailRow(w, name, "fast", calls.Fast)
		writeDetailRow(w, name, "slow", calls.Slow)
	}
}

func writeDetailRow(w io.Writer, name, backend string, durations []time.Duration) {
	if len(durations) == 0 {
		return
	}
	sorted := append([]time.Duration(nil), durations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Fprintf(w, "  %-20s %-7s %-6d %-12v %-12v %-12v %s\n",
		name, backend, len(durations),
		percentile(sorted, 0.50),
		percentile(sorted, 0.95),
		percentile(sorted, 0.99),
		lipgloss.NewStyle().Bold(true).Render(sparkline(durations)))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
