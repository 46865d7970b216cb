package trace

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"
)

// EventLogger is a Hook that prints one line per trace event. It is meant
// for debugging a host runtime's event stream, and doubles as a stand-in
// pre-existing hook when exercising the install/restore contract.
type EventLogger struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewEventLogger creates an event logger writing to the given writer.
func NewEventLogger(w io.Writer) *EventLogger {
	return &EventLogger{writer: w}
}

// HandleEvent logs the event and never fails.
func (l *EventLogger) HandleEvent(ev Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[TRACE %s] %s %s:%d %s\n",
		time.Now().Format("15:04:05.000"), ev.Kind, filepath.Base(ev.File), ev.Line, ev.Func)
	return nil
}
