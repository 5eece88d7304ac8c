package astroinput

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("input source unavailable")
	ErrEmptySource       = errors.New("input source is empty")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrNoPoints          = errors.New("no valid points found")
)

// RecordError describes the first line that could not be parsed.
// Field is "X" or "Y" for a bad coordinate and empty for a bad line shape.
type RecordError struct {
	Line  int
	Field string
	Token string
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: invalid format, expected 'x,y'", e.Line)
	}
	return fmt.Sprintf("line %d: invalid %s value '%s'", e.Line, e.Field, e.Token)
}

func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}
