package conflict

import (
	"fmt"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// Kind classifies a conflict.
type Kind int

// Conflict kinds.
const (
	KindInstructor Kind = iota + 1
	KindRoom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInstructor:
		return "instructor"
	case KindRoom:
		return "room"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes "instructor" or "room".
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "instructor":
		*k = KindInstructor
	case "room":
		*k = KindRoom
	default:
		return fmt.Errorf("unknown conflict kind %q", text)
	}
	return nil
}

// Record describes one conflict between two distinct sections.
type Record struct {
	// ID is deterministic, derived from kind, section ids and day
	ID string `json:"id"`

	Kind Kind `json:"kind"`

	// SectionA and SectionB are the conflicting section ids, SectionA < SectionB
	SectionA string `json:"sectionA"`
	SectionB string `json:"sectionB"`

	Day schedule.Day `json:"day"`

	// OverlapStart and OverlapEnd bound the shared sub-interval [start, end)
	OverlapStart int `json:"overlapStart"`
	OverlapEnd   int `json:"overlapEnd"`

	// Description is a human-readable explanation of the conflict
	Description string `json:"description"`
}

// Overlap returns the shared sub-interval as a TimeInterval.
func (r Record) Overlap() schedule.TimeInterval {
	return schedule.TimeInterval{Day: r.Day, Start: r.OverlapStart, End: r.OverlapEnd}
}

// Involves reports whether the record references the given section id.
func (r Record) Involves(sectionID string) bool {
	return r.SectionA == sectionID || r.SectionB == sectionID
}

// Summary aggregates a list of records.
type Summary struct {
	Total      int `json:"total"`
	Instructor int `json:"instructor"`
	Room       int `json:"room"`

	// Sections is the number of distinct sections involved in any conflict
	Sections int `json:"sections"`
}

// Summarize counts records per kind and distinct sections involved.
func Summarize(records []Record) Summary {
	seen := make(map[string]bool)
	var s Summary
	for _, r := range records {
		s.Total++
		switch r.Kind {
		case KindInstructor:
			s.Instructor++
		case KindRoom:
			s.Room++
		}
		seen[r.SectionA] = true
		seen[r.SectionB] = true
	}
	s.Sections = len(seen)
	return s
}

// BySection indexes records by every section id they reference.
// Per-section record order follows the input order.
func BySection(records []Record) map[string][]Record {
	out := make(map[string][]Record)
	for _, r := range records {
		out[r.SectionA] = append(out[r.SectionA], r)
		out[r.SectionB] = append(out[r.SectionB], r)
	}
	return out
}
