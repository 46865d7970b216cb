// Package inject rewrites source text so it runs inside a profiling scope.
// It is a pure text transformation; nothing here touches the timing core.
package inject

import (
	"fmt"
	"strings"
)

// Offset is the number of header lines inserted above the original source.
// The generated text shifts recorded line numbers back by this much so the
// reports refer to the original numbering.
const Offset = 2

const header = "prof := profile.Begin()\n{\n"

var footer = fmt.Sprintf(`}
prof.End()
prof.Session().ShiftLines(-%d)
report.PerLine(os.Stdout, prof.Session())
`, Offset)

const functionFooter = "report.PerFunction(os.Stdout, prof.Session())\n"

// Lines wraps source lines in a profiling scope that prints the per-line
// report on completion. When printFunctions is set, the generated text also
// prints the per-function report.
func Lines(lines []string, printFunctions bool) string {
	var b strings.Builder
	b.WriteString(header)
	for _, line := range lines {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(footer)
	if printFunctions {
		b.WriteString(functionFooter)
	}
	return b.String()
}
