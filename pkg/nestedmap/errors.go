package nestedmap

import "errors"

// ErrInvalidArgument is the parent of every precondition error returned by
// this package.
var ErrInvalidArgument = errors.New("nestedmap: invalid argument")

var (
	// ErrNilKey is returned by Put when the outer or inner key is nil.
	ErrNilKey = &argError{msg: "nil key"}

	// ErrNilFunc is returned when a required callback is nil.
	ErrNilFunc = &argError{msg: "nil function"}
)

type argError struct {
	msg string
}

func (e *argError) Error() string {
	return "nestedmap: " + e.msg
}

// Is reports ErrInvalidArgument as a match so callers can test for the
// whole class of errors.
func (e *argError) Is(target error) bool {
	return target == ErrInvalidArgument
}
