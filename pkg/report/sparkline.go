package report

import (
	"strings"
	"time"
)

// sparkline block characters from lowest to highest
var sparkBlocks = []rune{
	'\u2581', // ▁
	'\u2582', // ▂
	'\u2583', // ▃
	'\u2584', // ▄
	'\u2585', // ▅
	'\u2586', // ▆
	'\u2587', // ▇
	'\u2588', // █
}

// sparkline renders a Unicode sparkline of call durations in call order.
func sparkline(durations []time.Duration) string {
	if len(durations) == 0 {
		return ""
	}

	min, max := durations[0], durations[0]
	for _, d := range durations {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	var b strings.Builder
	rng := float64(max - min)
	for _, d := range durations {
		idx := 0
		if rng > 0 {
			idx = int(float64(d-min) / rng * float64(len(sparkBlocks)-1))
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return b.String()
}
