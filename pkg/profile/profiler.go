package profile

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/praateekmahajan/fsprof/pkg/dispatch"
	"github.com/praateekmahajan/fsprof/pkg/trace"
)

// ignoreMarkers match the profiler's own entry and exit statements as
// written by the injection helper. Lines containing either are never timed,
// so the profiler does not measure itself.
var ignoreMarkers = [...]string{"profile.Begin()", "prof.End()"}

// Probe is the handle for one profiling scope. Begin installs it as the
// trace hook; End restores whatever hook was installed before. For the
// scope's lifetime the probe exclusively owns its session and call stack.
type Probe struct {
	session    *Session
	prev       trace.Hook
	file       string
	entryPoint string
	clock      func() time.Time
	log        *logrus.Logger

	currKey *LineKey
	timer   lineTimer
	stack   callStack
	err     error
	ended   bool
}

// Option configures a Probe at Begin.
type Option func(*Probe)

// WithFile overrides the source file identity captured at scope entry.
// Only line events from this file are attributed.
func WithFile(file string) Option {
	return func(p *Probe) { p.file = file }
}

// WithEntryPoint overrides the dispatch entry point name whose call and
// return events the probe correlates.
func WithEntryPoint(name string) Option {
	return func(p *Probe) { p.entryPoint = name }
}

// WithClock overrides the monotonic clock, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(p *Probe) { p.clock = clock }
}

// WithLogger overrides the probe's logger.
func WithLogger(log *logrus.Logger) Option {
	return func(p *Probe) { p.log = log }
}

// Begin opens a profiling scope: it stamps the start time and installs the
// probe as the trace hook, remembering the previously installed hook. The
// traced file defaults to the caller's source file. Pair every Begin with a
// deferred End so teardown also runs on abnormal exits.
func Begin(opts ...Option) *Probe {
	p := &Probe{
		entryPoint: dispatch.DefaultEntryPoint,
		clock:      time.Now,
		timer:      make(lineTimer),
	}
	if _, file, _, ok := runtime.Caller(1); ok {
		p.file = file
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logrus.New()
		p.log.SetLevel(logrus.WarnLevel)
	}
	p.session = newSession(p.file, p.clock())
	p.prev = trace.Install(p)
	p.log.WithField("file", p.file).Debug("profiling scope opened")
	return p
}

// End closes the scope: it restores the previously installed trace hook and
// freezes the session's end timestamp. Only the first call takes effect.
func (p *Probe) End() {
	if p.ended {
		return
	}
	p.ended = true
	trace.Restore(p.prev)
	p.session.end = p.clock()
	if n := p.stack.depth(); n > 0 {
		p.log.WithField("frames", n).Debug("scope ended with in-flight dispatch calls")
	}
	p.log.WithField("elapsed", p.session.Elapsed()).Debug("profiling scope closed")
}

// Session returns the session owned by this probe.
func (p *Probe) Session() *Session {
	return p.session
}

// Err reports a fatal identifier-derivation failure, if one occurred. A
// session with a non-nil Err has stopped aggregating.
func (p *Probe) Err() error {
	return p.err
}

// HandleEvent folds one trace event into the session. It implements
// trace.Hook and runs on the critical path of every traced line and call,
// so it does no I/O. A failure to derive an identifier is fatal: the error
// is recorded and every later event is rejected with it.
func (p *Probe) HandleEvent(ev trace.Event) error {
	if p.err != nil {
		return p.err
	}
	now := p.clock()
	switch ev.Kind {
	case trace.KindLine:
		p.handleLine(ev, now)
	case trace.KindCall:
		if ev.Func != p.entryPoint {
			return nil
		}
		return p.handleCall(ev, now)
	case trace.KindReturn:
		if ev.Func != p.entryPoint {
			return nil
		}
		p.handleReturn(ev, now)
	}
	return nil
}

func (p *Probe) handleLine(ev trace.Event, now time.Time) {
	if ev.File != p.session.file {
		return
	}
	for _, marker := range ignoreMarkers {
		if strings.Contains(ev.Text, marker) {
			return
		}
	}
	key := LineKey{Line: ev.Line, File: ev.File, Text: ev.Text}
	if _, ok := p.session.lines[key]; !ok {
		p.session.lines[key] = &LineStats{}
	}
	p.timer.stamp(key, now)
	p.currKey = &key
}

func (p *Probe) handleCall(ev trace.Event, now time.Time) error {
	// Re-stamp so the line bucket measures only the dispatch call, not
	// time spent on the line before it.
	if p.currKey != nil {
		p.timer.stamp(*p.currKey, now)
	}
	name, err := dispatch.Identify(ev.Subject)
	if err != nil {
		p.err = fmt.Errorf("cannot name dispatch subject at %s:%d: %w", ev.File, ev.Line, err)
		return p.err
	}
	p.stack.push(callFrame{name: name, start: now})
	return nil
}

func (p *Probe) handleReturn(ev trace.Event, now time.Time) {
	if ev.Outcome == nil {
		// The call raised: drop its frame and record nothing. The line
		// timer is left as is, so the elapsed time is absorbed by the
		// next successful call on the current line.
		p.stack.pop()
		return
	}
	if p.currKey != nil {
		elapsed := p.timer.elapsed(*p.currKey, now)
		stats := p.session.lines[*p.currKey]
		if ev.Outcome.Fast {
			stats.Fast += elapsed
		} else {
			stats.Slow += elapsed
		}
	}
	if frame, ok := p.stack.pop(); ok {
		p.session.funcs[frame.name] = append(p.session.funcs[frame.name],
			CallRecord{Fast: ev.Outcome.Fast, Duration: now.Sub(frame.start)})
	}
}
