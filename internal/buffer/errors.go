package buffer

import "errors"

var (
	// ErrRangeInvalid is returned by RemoveRange when the caller passes a
	// range with End before Start. The original source swaps and adjusts;
	// this port treats it as a precondition violation instead (see
	// DESIGN.md's Open Question decision).
	ErrRangeInvalid = errors.New("buffer: range end before start")

	// ErrOutOfBounds is returned when a position does not satisfy
	// 0 <= Line < len(lines) && 0 <= Col <= len(lines[Line]).
	ErrOutOfBounds = errors.New("buffer: position out of bounds")

	// ErrLoad is returned for I/O failures from file loading, reload, and
	// save. The underlying error is not attached.
	ErrLoad = errors.New("buffer: load failed")
)
