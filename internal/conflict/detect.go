package conflict

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// recordNamespace scopes the name-based record ids.
var recordNamespace = uuid.MustParse("6f1c2a0e-54d3-4b8c-9a51-3e2f7d9c0b41")

// candidate is a section with its scheduled meetings pre-filtered.
type candidate struct {
	section  schedule.Section
	meetings []schedule.MeetingBlock
}

// Detect finds every instructor and room conflict among sections.
//
// For each unordered pair the section with the smaller id is scanned as the
// outer side, so the result does not depend on input order beyond the order
// of the returned records. Sections without a scheduled meeting are skipped.
func Detect(sections []schedule.Section) []Record {
	candidates := make([]candidate, 0, len(sections))
	for _, s := range sections {
		meetings := s.ScheduledMeetings()
		if len(meetings) == 0 {
			continue
		}
		candidates = append(candidates, candidate{section: s, meetings: meetings})
	}

	records := []Record{}
	seen := make(map[pairKey]bool)
	add := func(r *Record) {
		if r == nil {
			return
		}
		k := pairKey{kind: r.Kind, a: r.SectionA, b: r.SectionB}
		if seen[k] {
			return
		}
		seen[k] = true
		records = append(records, *r)
	}

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			if a.section.ID == b.section.ID {
				continue
			}
			if b.section.ID < a.section.ID {
				a, b = b, a
			}

			add(checkInstructor(a, b))
			add(checkRoom(a, b))
		}
	}

	return records
}

// checkInstructor returns the first instructor conflict between a and b, or nil.
func checkInstructor(a, b candidate) *Record {
	key := a.section.InstructorKey()
	if key == "" || key != b.section.InstructorKey() {
		return nil
	}

	for _, ma := range a.meetings {
		for _, mb := range b.meetings {
			start, end, ok := schedule.Overlap(ma.Interval, mb.Interval)
			if !ok {
				continue
			}
			who := a.section.Instructor.Name
			if who == "" {
				who = key
			}
			return newRecord(KindInstructor, a.section, b.section, ma.Interval.Day, start, end, who)
		}
	}
	return nil
}

// checkRoom returns the first room conflict between a and b, or nil.
func checkRoom(a, b candidate) *Record {
	for _, ma := range a.meetings {
		buildingA, roomA, ok := ma.Location()
		if !ok {
			continue
		}
		for _, mb := range b.meetings {
			buildingB, roomB, ok := mb.Location()
			if !ok || buildingA != buildingB || roomA != roomB {
				continue
			}
			start, end, ok := schedule.Overlap(ma.Interval, mb.Interval)
			if !ok {
				continue
			}
			where := fmt.Sprintf("%s %s", buildingA, roomA)
			return newRecord(KindRoom, a.section, b.section, ma.Interval.Day, start, end, where)
		}
	}
	return nil
}

func newRecord(kind Kind, a, b schedule.Section, day schedule.Day, start, end int, subject string) *Record {
	return &Record{
		ID:           recordID(kind, a.ID, b.ID, day),
		Kind:         kind,
		SectionA:     a.ID,
		SectionB:     b.ID,
		Day:          day,
		OverlapStart: start,
		OverlapEnd:   end,
		Description: fmt.Sprintf("%s is double-booked: %s and %s on %s %s-%s",
			subject, a.Code(), b.Code(), day, schedule.FormatClock(start), schedule.FormatClock(end)),
	}
}

// pairKey identifies at most one record per kind and normalized pair.
type pairKey struct {
	kind Kind
	a, b string
}

// recordID derives a stable id from the pair, kind and day.
func recordID(kind Kind, a, b string, day schedule.Day) string {
	name := fmt.Sprintf("%s|%q|%q|%s", kind, a, b, day.Short())
	return uuid.NewSHA1(recordNamespace, []byte(name)).String()
}

// Mark returns a copy of sections in which HasConflict is true exactly for
// the sections referenced by at least one record. The input is not modified.
func Mark(sections []schedule.Section, records []Record) []schedule.Section {
	involved := make(map[string]bool, len(records)*2)
	for _, r := range records {
		involved[r.SectionA] = true
		involved[r.SectionB] = true
	}

	out := schedule.CloneSections(sections)
	for i := range out {
		out[i].HasConflict = involved[out[i].ID]
	}
	return out
}
