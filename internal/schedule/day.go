package schedule

import (
	"fmt"
	"strings"
)

// Day is a teaching weekday. The zero value is not a valid day.
type Day int

// Weekday constants.
const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays lists every valid Day in calendar order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

// Valid reports whether d is one of Monday through Friday.
func (d Day) Valid() bool {
	return d >= Monday && d <= Friday
}

// String returns the full day name, e.g. "Monday".
func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

// Short returns the upper-case three-letter abbreviation, e.g. "MON".
func (d Day) Short() string {
	if !d.Valid() {
		return "???"
	}
	return strings.ToUpper(dayNames[d][:3])
}

// MarshalText encodes the day as its full name.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDay, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes any form accepted by ParseDay.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDay parses a day name. It accepts full names ("monday"), three-letter
// abbreviations ("Mon") and the registrar single-letter codes M, T, W, R, F.
// Matching is case-insensitive.
func ParseDay(s string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "m":
		return Monday, nil
	case "t":
		return Tuesday, nil
	case "w":
		return Wednesday, nil
	case "r":
		return Thursday, nil
	case "f":
		return Friday, nil
	}

	for _, d := range Weekdays {
		name := strings.ToLower(dayNames[d])
		if v == name || (len(v) == 3 && v == name[:3]) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}
