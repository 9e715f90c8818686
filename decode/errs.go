package decode

import (
	"errors"
	"fmt"
	"io"
)

var ErrFormat = errors.New("format error")

// FormatError reports complete but malformed input.
type FormatError struct {
	Reason string
	Offset int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error at offset %d: %s", e.Offset, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IOError reports input that ended before a read completed. It wraps
// io.ErrUnexpectedEOF.
type IOError struct {
	Offset int
	Need   int
}

func (e *IOError) Error() string {
	return fmt.Sprintf("truncated input at offset %d: need %d more bytes", e.Offset, e.Need)
}

func (e *IOError) Unwrap() error { return io.ErrUnexpectedEOF }
