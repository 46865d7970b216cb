// Package report renders the per-line and per-function views of a finished
// profiling session as styled console tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/praateekmahajan/fsprof/pkg/profile"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// seconds formats a duration as fractional seconds.
func seconds(d time.Duration, precision int) string {
	return strconv.FormatFloat(d.Seconds(), 'f', precision, 64)
}

// blankIfZero renders a per-line bucket, leaving never-hit backends blank.
func blankIfZero(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return seconds(d, 9)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// PerLine writes the per-line timing table for a frozen session.
func PerLine(w io.Writer, s *profile.Session) {
	fmt.Fprintln(w, titleStyle.Render(
		fmt.Sprintf("Total time elapsed: %.3f seconds", s.Elapsed().Seconds())))

	var rows [][]string
	for _, row := range s.PerLine() {
		rows = append(rows, []string{
			strconv.Itoa(row.Line),
			row.Text,
			blankIfZero(row.Fast),
			blankIfZero(row.Slow),
		})
	}

	t := newTable("LINE NO.", "LINE", "FAST TIME(S)", "SLOW TIME(S)").Rows(rows...)
	fmt.Fprintln(w, t)
}

// PerFunction writes the per-function dispatch table for a frozen session.
func PerFunction(w io.Writer, s *profile.Session) {
	view := s.PerFunction()
	names := sortedNames(view)

	var (
		fastCalls, slowCalls int
		fastTotal, slowTotal time.Duration
	)
	var rows [][]string
	for _, name := range names {
		calls := view[name]
		fastSum := sum(calls.Fast)
		slowSum := sum(calls.Slow)
		rows = append(rows, []string{
			name,
			strconv.Itoa(len(calls.Fast)),
			seconds(fastSum, 3),
			seconds(perCall(fastSum, len(calls.Fast)), 3),
			strconv.Itoa(len(calls.Slow)),
			seconds(slowSum, 3),
			seconds(perCall(slowSum, len(calls.Slow)), 3),
		})
		fastCalls += len(calls.Fast)
		slowCalls += len(calls.Slow)
		fastTotal += fastSum
		slowTotal += slowSum
	}

	title := fmt.Sprintf("Total time elapsed: %.3f seconds\n%d fast function calls in %.3f seconds\n%d slow function calls in %.3f seconds",
		s.Elapsed().Seconds(),
		fastCalls, fastTotal.Seconds(),
		slowCalls, slowTotal.Seconds())
	fmt.Fprintln(w, titleStyle.Render(title))

	t := newTable("FUNCTION",
		"FAST NCALLS", "FAST CUMTIME(S)", "FAST PERCALL(S)",
		"SLOW NCALLS", "SLOW CUMTIME(S)", "SLOW PERCALL(S)").Rows(rows...)
	fmt.Fprintln(w, t)
}

// sortedNames fixes the row order so repeated rendering of the same session
// is byte-identical.
func sortedNames(view map[string]profile.FunctionCalls) []string {
	names := make([]string, 0, len(view))
	for name := range view {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sum(durations []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total
}

func perCall(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}
