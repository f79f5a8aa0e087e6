package bridge

import "errors"

var (
	// ErrNoValue indicates the board did not answer a read in time.
	ErrNoValue = errors.New("no value from board")
	// ErrOutOfRange indicates a command argument outside its domain.
	ErrOutOfRange = errors.New("argument out of range")
)
