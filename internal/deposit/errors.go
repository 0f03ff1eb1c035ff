package deposit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedFrequency is returned for a frequency outside the fixed enumeration.
	ErrUnsupportedFrequency = errors.New("unsupported compounding frequency")
)

// ArgumentError names the request field that failed validation.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Field, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
