// Package trace defines the execution-trace event model and the hook slot
// through which a host runtime reports line, call, and return events.
//
// The slot is process-wide state with a single control flow of execution:
// the host invokes Emit inline with the code it runs, never from another
// goroutine, so the slot carries no locking. Nesting two profiling scopes is
// not supported; the inner scope's teardown would restore the outer scope's
// hook rather than the true original.
package trace

import "github.com/praateekmahajan/fsprof/pkg/dispatch"

// Kind identifies the type of a trace event.
type Kind uint8

const (
	KindLine Kind = iota
	KindCall
	KindReturn
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCall:
		return "call"
	case KindReturn:
		return "return"
	}
	return "unknown"
}

// Event is one observation reported by the host runtime.
type Event struct {
	Kind Kind
	File string // source file identity of the originating frame
	Line int    // line number within File
	Text string // literal source text of the line
	Func string // name of the observed code object

	// Subject is the first argument of a call into the dispatch entry
	// point. Unset for other events.
	Subject dispatch.Subject

	// Outcome is the entry point's return value. A nil Outcome on a
	// KindReturn event means the call raised instead of returning.
	Outcome *dispatch.Outcome
}

// Hook consumes trace events. An error returned by a hook propagates to the
// emitting host; it must not be swallowed, or tracing would silently go dark.
type Hook interface {
	HandleEvent(Event) error
}

var active Hook

// Install puts h into the hook slot and returns the previously installed
// hook, which the caller is responsible for restoring on scope exit.
func Install(h Hook) Hook {
	prev := active
	active = h
	return prev
}

// Restore puts a previously installed hook back into the slot.
func Restore(h Hook) {
	active = h
}

// Emit delivers an event to the installed hook, if any.
func Emit(ev Event) error {
	if active == nil {
		return nil
	}
	return active.HandleEvent(ev)
}
