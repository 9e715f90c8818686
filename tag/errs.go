package tag

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrValue is matched by every ValueError.
	ErrValue = errors.New("value error")

	ErrNotFound = errors.New("not found")
)

// ValidationError reports an operation that would break a structural
// invariant of the tree. The tree is left untouched when one is returned.
type ValidationError struct {
	Op   string
	Path string
	Msg  string
	Err  error
}

func (e *ValidationError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalidf(op, format string, args ...any) *ValidationError {
	return &ValidationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ValueError reports input that cannot be parsed into a value of Type, or a
// number outside of Type's range.
type ValueError struct {
	Type  Type
	Input string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("cannot use %q as %s: %v", e.Input, e.Type, e.Err)
}

func (e *ValueError) Is(target error) bool { return target == ErrValue }

func (e *ValueError) Unwrap() error { return e.Err }
