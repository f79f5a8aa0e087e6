package link

import "errors"

var (
	// ErrClosed indicates the port has been closed.
	ErrClosed = errors.New("port closed")
	// ErrNoPortFound indicates no serial port is available.
	ErrNoPortFound = errors.New("no serial port found")
	// ErrTimeout is returned by ReadLine when nothing arrives in time.
	// os.IsTimeout reports true for it.
	ErrTimeout error = timeoutError{"read timeout"}
	// ErrTruncated is returned with the partial line when ReadTimeout
	// expires before the terminator. os.IsTimeout reports true for it.
	ErrTruncated error = timeoutError{"truncated line"}
)

type timeoutError struct {
	msg string
}

// Error implements error.
func (e timeoutError) Error() string { return e.msg }

// Timeout makes os.IsTimeout recognize the error.
func (timeoutError) Timeout() bool { return true }
