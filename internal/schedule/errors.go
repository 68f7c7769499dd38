package schedule

import "errors"

var (
	// ErrInvalidDay indicates a day outside Monday through Friday.
	ErrInvalidDay = errors.New("invalid day")

	// ErrInvalidInterval indicates an interval with start >= end or minutes out of range.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidClock indicates a clock string that could not be parsed.
	ErrInvalidClock = errors.New("invalid clock time")
)
