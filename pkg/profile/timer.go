package profile

import "time"

// lineTimer tracks the start stamp of traced lines. A call into the dispatch
// entry point re-stamps the current line so the line bucket measures only
// the dispatch call itself.
type lineTimer map[LineKey]time.Time

func (t lineTimer) stamp(key LineKey, now time.Time) {
	t[key] = now
}

func (t lineTimer) elapsed(key LineKey, now time.Time) time.Duration {
	return now.Sub(t[key])
}
