// Package dispatch specifies the contract between the profiler and the
// external layer that routes each call to the fast or the slow backend.
package dispatch

import (
	"errors"
	"fmt"
)

// DefaultEntryPoint is the name of the dispatch function whose call and
// return events the profiler correlates.
const DefaultEntryPoint = "FastSlowCall"

// WrapperKind tags a result-wrapper type variant.
type WrapperKind uint8

const (
	Final WrapperKind = iota
	Intermediate
)

// Subject identifies the callable or type a dispatch call was made for.
// The set of implementations is closed: a subject is a Method, a Function,
// or a WrapperType, and nothing else can be named.
type Subject interface {
	subject()
}

// Method is a bound-method-like proxy. Both fields come from the proxy's
// wrapped-callable metadata, never from attribute access on the proxy
// itself, which could trigger further instrumented calls.
type Method struct {
	TypeName string // declared type of the receiver
	Name     string // name of the wrapped callable
}

// Function is a free-function-like proxy.
type Function struct {
	Name string
}

// WrapperType is a type tagged as a final or intermediate result wrapper.
type WrapperType struct {
	Name string
	Kind WrapperKind
}

func (Method) subject()      {}
func (Function) subject()    {}
func (WrapperType) subject() {}

// ErrUnknownSubject reports a dispatch subject of no known shape. It is
// unrecoverable: deriving no identifier would silently misattribute time.
var ErrUnknownSubject = errors.New("dispatch: unknown subject shape")

// Identify derives the stable function identifier for a dispatch subject.
func Identify(s Subject) (string, error) {
	switch s := s.(type) {
	case Method:
		return s.TypeName + "." + s.Name, nil
	case Function:
		return s.Name, nil
	case WrapperType:
		return s.Name, nil
	case nil:
		return "", ErrUnknownSubject
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownSubject, s)
	}
}

// Outcome is the tuple-like value the entry point returns on success. Fast
// is the second element: whether the call ran on the fast backend. A nil
// *Outcome on a return event means the call raised instead of returning.
type Outcome struct {
	Value any
	Fast  bool
}
