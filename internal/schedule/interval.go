package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every minute value in a TimeInterval.
const MinutesPerDay = 24 * 60

// TimeInterval is a half-open span [Start, End) of minutes since midnight on a single Day.
type TimeInterval struct {
	Day   Day `json:"day" yaml:"day"`
	Start int `json:"start" yaml:"start"` // minutes from midnight (480 = 08:00)
	End   int `json:"end" yaml:"end"`     // minutes from midnight, exclusive
}

// NewTimeInterval creates a validated TimeInterval.
func NewTimeInterval(day Day, start, end int) (TimeInterval, error) {
	if !day.Valid() {
		return TimeInterval{}, fmt.Errorf("%w: %d", ErrInvalidDay, int(day))
	}
	if start < 0 || end > MinutesPerDay {
		return TimeInterval{}, fmt.Errorf("%w: minutes must be within [0, %d], got [%d, %d)", ErrInvalidInterval, MinutesPerDay, start, end)
	}
	if start >= end {
		return TimeInterval{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidInterval, FormatClock(start), FormatClock(end))
	}
	return TimeInterval{Day: day, Start: start, End: end}, nil
}

// MustTimeInterval is like NewTimeInterval but panics on invalid input.
// It is intended for fixtures and tests.
func MustTimeInterval(day Day, start, end int) TimeInterval {
	t, err := NewTimeInterval(day, start, end)
	if err != nil {
		panic(err)
	}
	return t
}

// Duration returns the interval length in minutes.
func (t TimeInterval) Duration() int {
	return t.End - t.Start
}

// String renders the interval as "Monday 08:00-08:50".
func (t TimeInterval) String() string {
	return fmt.Sprintf("%s %s-%s", t.Day, FormatClock(t.Start), FormatClock(t.End))
}

// Overlap returns the shared sub-interval [start, end) of a and b.
// Intervals on different days never overlap, and touching intervals
// (a.End == b.Start) do not overlap either.
func Overlap(a, b TimeInterval) (start, end int, ok bool) {
	if a.Day != b.Day {
		return 0, 0, false
	}
	if a.Start < b.End && b.Start < a.End {
		return max(a.Start, b.Start), min(a.End, b.End), true
	}
	return 0, 0, false
}

// Overlaps reports whether a and b share at least one minute on the same day.
func Overlaps(a, b TimeInterval) bool {
	_, _, ok := Overlap(a, b)
	return ok
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseClock parses "HHMM", "HMM" or "HH:MM" into minutes since midnight.
// "2400" / "24:00" is accepted as the end of the day.
func ParseClock(s string) (int, error) {
	v := strings.TrimSpace(s)
	var hh, mm string
	if i := strings.IndexByte(v, ':'); i >= 0 {
		hh, mm = v[:i], v[i+1:]
	} else {
		if len(v) < 3 || len(v) > 4 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		hh, mm = v[:len(v)-2], v[len(v)-2:]
	}
	if len(mm) != 2 || len(hh) == 0 || len(hh) > 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return h*60 + m, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
