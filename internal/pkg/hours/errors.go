package hours

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDayToken    = errors.New("invalid day token")
	ErrMalformedDayList   = errors.New("malformed day list")
	ErrMalformedTime      = errors.New("malformed time")
	ErrMalformedTimeRange = errors.New("malformed time range")
)

// ParseError reports where in an hours group parsing stopped. Kind is one of
// the Err* sentinels above and is what errors.Is matches against.
type ParseError struct {
	Kind   error
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d of %q: near %q", e.Kind, e.Offset, e.Input, e.Near())
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Near returns the offending substring, from the failure offset to the end
// of the input.
func (e *ParseError) Near() string {
	if e.Offset < 0 || e.Offset > len(e.Input) {
		return e.Input
	}
	return e.Input[e.Offset:]
}
