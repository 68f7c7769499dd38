package cli

import "errors"

var (
	// ErrConflictsFound is returned by check when the schedule has conflicts.
	ErrConflictsFound = errors.New("schedule conflicts found")

	// ErrNoDataFile indicates no schedule file was configured.
	ErrNoDataFile = errors.New("no schedule file: pass --file or set data_file")
)
