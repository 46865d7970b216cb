package profile

import "time"

// callFrame is the transient bookkeeping record for one in-flight dispatch
// call. Frames live only on the stack and are never persisted.
type callFrame struct {
	name  string
	start time.Time
}

// callStack correlates entry-point returns with the calls that started
// them. Pushes and pops are strictly LIFO, matching dispatch nesting.
type callStack []callFrame

func (s *callStack) push(f callFrame) {
	*s = append(*s, f)
}

func (s *callStack) pop() (callFrame, bool) {
	if len(*s) == 0 {
		return callFrame{}, false
	}
	f := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return f, true
}

func (s callStack) depth() int {
	return len(s)
}
