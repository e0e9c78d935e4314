package config

import "fmt"

// ErrorKind classifies failures building a Description from loaded data.
type ErrorKind uint8

const (
	// UnknownStateRef indicates a transition or final-state entry named
	// a state that never appeared in the states list.
	UnknownStateRef ErrorKind = iota

	// EmptySymbol indicates a transition entry with no symbol text.
	EmptySymbol

	// NoStates indicates the description listed zero states.
	NoStates
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownStateRef:
		return "UnknownStateRef"
	case EmptySymbol:
		return "EmptySymbol"
	case NoStates:
		return "NoStates"
	default:
		return "Unknown"
	}
}

// Error reports a problem in a loaded DFA description, identified by
// Kind so callers can branch with errors.As without string matching.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
