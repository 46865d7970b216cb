package trace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	events []Event
	err    error
}

func (h *recordingHook) HandleEvent(ev Event) error {
	h.events = append(h.events, ev)
	return h.err
}

func TestInstallReturnsPrevious(t *testing.T) {
	defer Restore(nil)

	first := &recordingHook{}
	second := &recordingHook{}

	require.Nil(t, Install(first))
	require.Same(t, Hook(first), Install(second))

	Restore(first)
	require.Same(t, Hook(first), Install(nil))
}

func TestEmitDeliversToInstalledHook(t *testing.T) {
	defer Restore(nil)

	hook := &recordingHook{}
	Install(hook)

	ev := Event{Kind: KindLine, File: "script.src", Line: 7, Text: "x = op(y)"}
	require.NoError(t, Emit(ev))
	require.Equal(t, []Event{ev}, hook.events)
}

func TestEmitPropagatesHookError(t *testing.T) {
	defer Restore(nil)

	wantErr := errors.New("hook failed")
	Install(&recordingHook{err: wantErr})
	require.ErrorIs(t, Emit(Event{Kind: KindCall}), wantErr)
}

func TestEmitWithoutHook(t *testing.T) {
	Restore(nil)
	require.NoError(t, Emit(Event{Kind: KindReturn}))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "line", KindLine.String())
	require.Equal(t, "call", KindCall.String())
	require.Equal(t, "return", KindReturn.String())
	require.Equal(t, "unknown", Kind(99).String())
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewEventLogger(&buf)

	require.NoError(t, logger.HandleEvent(Event{
		Kind: KindCall,
		File: "/tmp/script.src",
		Line: 12,
		Func: "FastSlowCall",
	}))

	out := buf.String()
	require.Contains(t, out, "call")
	require.Contains(t, out, "script.src:12")
	require.Contains(t, out, "FastSlowCall")
}
