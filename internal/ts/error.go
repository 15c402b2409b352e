package ts

import "fmt"

// ErrorKind classifies the fatal mapping failures.
type ErrorKind string

const (
	ErrUnsupportedType           ErrorKind = "unsupported type"
	ErrUnknownType               ErrorKind = "unknown type"
	ErrMissingName               ErrorKind = "missing name"
	ErrConflictingEnumDefinition ErrorKind = "conflicting enum definition"
)

// MapError is returned for every mapping failure. Kind tells the failures
// apart programmatically.
type MapError struct {
	Kind    ErrorKind
	Message string
}

func (e *MapError) Error() string {
	return e.Message
}

func mapErrorf(kind ErrorKind, format string, args ...any) *MapError {
	return &MapError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
