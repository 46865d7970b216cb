package store

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

// Severity indicates the magnitude of a timing drift.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityRegress  Severity = "regression"
)

// Comparison holds the drift analysis for one function's backend time.
type Comparison struct {
	Function   string
	Backend    string // "fast" or "slow"
	OldSeconds float64
	NewSeconds float64
	DeltaPct   float64
	Severity   Severity
}

var (
	cmpTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cmpHead  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	cmpDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cmpOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	cmpWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cmpErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cmpMinor = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Compare matches functions by identifier and calculates the drift of their
// cumulative fast and slow time from old to cur. Functions absent from
// either session are skipped, as are backends unused in both.
func Compare(old, cur *profile.Session) []Comparison {
	oldView := old.PerFunction()
	curView := cur.PerFunction()

	names := make([]string, 0, len(curView))
	for name := range curView {
		if _, ok := oldView[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var comparisons []Comparison
	for _, name := range names {
		oldCalls, curCalls := oldView[name], curView[name]
		for _, backend := range []struct {
			label    string
			old, cur time.Duration
		}{
			{"fast", sum(oldCalls.Fast), sum(curCalls.Fast)},
			{"slow", sum(oldCalls.Slow), sum(curCalls.Slow)},
		} {
			if backend.old == 0 && backend.cur == 0 {
				continue
			}

			oldSec := backend.old.Seconds()
			curSec := backend.cur.Seconds()
			var deltaPct float64
			if oldSec != 0 {
				deltaPct = ((curSec - oldSec) / math.Abs(oldSec)) * 100
			} else if curSec != 0 {
				deltaPct = 100
			}

			comparisons = append(comparisons, Comparison{
				Function:   name,
				Backend:    backend.label,
				OldSeconds: oldSec,
				NewSeconds: curSec,
				DeltaPct:   deltaPct,
				Severity:   classifySeverity(deltaPct),
			})
		}
	}

	return comparisons
}

func classifySeverity(deltaPct float64) Severity {
	absDelta := math.Abs(deltaPct)
	if absDelta < 5 {
		return SeverityNone
	}
	if absDelta < 15 {
		return SeverityMinor
	}
	if absDelta < 30 {
		return SeverityModerate
	}
	if deltaPct > 0 {
		return SeverityRegress
	}
	return SeverityMajor
}

func sum(durations []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total
}

// RenderComparison outputs a styled comparison table.
func RenderComparison(w io.Writer, old *profile.Session, comparisons []Comparison) {
	fmt.Fprintln(w, cmpTitle.Render("Session Comparison"))
	fmt.Fprintln(w, cmpDim.Render(strings.Repeat("═", 90)))
	fmt.Fprintf(w, "Comparing against session of %s (from %s)\n\n",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%q", old.File())),
		cmpDim.Render(old.EndedAt().Format("2006-01-02 15:04:05")))

	fmt.Fprintf(w, "  %s %s %s %s %s %s\n",
		cmpHead.Render("FUNCTION                "),
		cmpHead.Render("BACKEND       "),
		cmpHead.Render("OLD(S)    "),
		cmpHead.Render("NEW(S)    "),
		cmpHead.Render("DELTA    "),
		cmpHead.Render("SEVERITY  "))
	fmt.Fprintln(w, "  "+cmpDim.Render(strings.Repeat("─", 90)))

	regressions := 0
	for _, c := range comparisons {
		deltaStr := fmt.Sprintf("%+.1f%%", c.DeltaPct)
		var sevStr string
		switch c.Severity {
		case SeverityRegress:
			sevStr = cmpErr.Render("REGRESSION")
			regressions++
		case SeverityMajor:
			sevStr = cmpErr.Render("MAJOR")
			regressions++
		case SeverityModerate:
			sevStr = cmpWarn.Render("moderate")
		case SeverityMinor:
			sevStr = cmpMinor.Render("minor")
		default:
			sevStr = cmpOK.Render("none")
		}

		fmt.Fprintf(w, "  %-25s %-15s %-12.3f %-12.3f %-10s %s\n",
			c.Function, c.Backend, c.OldSeconds, c.NewSeconds, deltaStr, sevStr)
	}

	fmt.Fprintln(w)
	if regressions > 0 {
		fmt.Fprintf(w, "  %s\n", cmpErr.Render(fmt.Sprintf("%d potential regressions detected.", regressions)))
	} else {
		fmt.Fprintf(w, "  %s\n", cmpOK.Render("No significant regressions detected."))
	}
}
