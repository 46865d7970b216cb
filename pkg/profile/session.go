package profile

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Session owns the aggregated state of one profiling scope. It is created
// on scope entry, mutated by the probe for the scope's lifetime, and frozen
// when the scope ends.
type Session struct {
	file  string
	start time.Time
	end   time.Time
	lines map[LineKey]*LineStats
	funcs map[string][]CallRecord
}

func newSession(file string, start time.Time) *Session {
	return &Session{
		file:  file,
		start: start,
		lines: make(map[LineKey]*LineStats),
		funcs: make(map[string][]CallRecord),
	}
}

// File returns the source file identity the session traced.
func (s *Session) File() string {
	return s.file
}

// StartedAt returns the scope entry timestamp.
func (s *Session) StartedAt() time.Time {
	return s.start
}

// EndedAt returns the scope exit timestamp; zero while the scope is live.
func (s *Session) EndedAt() time.Time {
	return s.end
}

// Elapsed returns total wall time between scope entry and exit.
func (s *Session) Elapsed() time.Duration {
	return s.end.Sub(s.start)
}

// ShiftLines remaps every recorded line number by delta. The injection
// helper uses it to undo the header lines it inserts above traced code.
func (s *Session) ShiftLines(delta int) {
	shifted := make(map[LineKey]*LineStats, len(s.lines))
	for key, stats := range s.lines {
		key.Line += delta
		shifted[key] = stats
	}
	s.lines = shifted
}

// SnapshotVersion ties persisted sessions to the in-memory layout. A
// snapshot written with a different version does not load.
const SnapshotVersion = 1

// ErrSnapshotVersion reports a snapshot written by an incompatible version.
var ErrSnapshotVersion = errors.New("profile: snapshot version mismatch")

// LineSnapshot is the persistable form of one LineStats entry.
type LineSnapshot struct {
	Key  LineKey
	Fast time.Duration
	Slow time.Duration
}

// FuncSnapshot is the persistable form of one function's call records.
type FuncSnapshot struct {
	Name  string
	Calls []CallRecord
}

// Snapshot is the persistable form of a Session. Entries are held in
// deterministic order so equal sessions encode to equal bytes.
type Snapshot struct {
	Version int
	File    string
	Start   time.Time
	End     time.Time
	Lines   []LineSnapshot
	Funcs   []FuncSnapshot
}

// Snapshot converts the session to its persistable form.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		File:    s.file,
		Start:   s.start,
		End:     s.end,
	}
	for key, stats := range s.lines {
		snap.Lines = append(snap.Lines, LineSnapshot{Key: key, Fast: stats.Fast, Slow: stats.Slow})
	}
	sort.Slice(snap.Lines, func(i, j int) bool {
		a, b := snap.Lines[i].Key, snap.Lines[j].Key
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Text != b.Text {
			return a.Text < b.Text
		}
		return a.File < b.File
	})
	for name, calls := range s.funcs {
		snap.Funcs = append(snap.Funcs, FuncSnapshot{Name: name, Calls: calls})
	}
	sort.Slice(snap.Funcs, func(i, j int) bool {
		return snap.Funcs[i].Name < snap.Funcs[j].Name
	})
	return snap
}

// FromSnapshot rebuilds a session from its persistable form.
func FromSnapshot(snap Snapshot) (*Session, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotVersion, snap.Version, SnapshotVersion)
	}
	s := newSession(snap.File, snap.Start)
	s.end = snap.End
	for _, l := range snap.Lines {
		s.lines[l.Key] = &LineStats{Fast: l.Fast, Slow: l.Slow}
	}
	for _, f := range snap.Funcs {
		s.funcs[f.Name] = append([]CallRecord(nil), f.Calls...)
	}
	return s, nil
}
