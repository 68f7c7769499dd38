package ingest

import (
	"fmt"
	"strings"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// Normalize converts every raw section of doc into a schedule.Section.
// It fails on the first record that cannot be normalized.
func Normalize(doc Document) ([]schedule.Section, error) {
	sections := make([]schedule.Section, 0, len(doc.Sections))
	seen := make(map[string]int, len(doc.Sections))

	for i, raw := range doc.Sections {
		s, err := NormalizeSection(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, raw.ID, err)
		}
		if prev, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("record %d (%s): %w: duplicate id, first seen at record %d", i, raw.ID, ErrInvalidRecord, prev)
		}
		seen[s.ID] = i
		sections = append(sections, s)
	}

	return sections, nil
}

// NormalizeSection converts one raw section.
func NormalizeSection(raw RawSection) (schedule.Section, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return schedule.Section{}, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if raw.Enrollment < 0 || raw.MaximumEnrollment < 0 {
		return schedule.Section{}, fmt.Errorf("%w: negative enrollment", ErrInvalidRecord)
	}

	s := schedule.Section{
		ID:            id,
		Subject:       strings.TrimSpace(raw.Subject),
		CatalogNumber: strings.TrimSpace(raw.CourseNumber),
		SectionCode:   strings.TrimSpace(raw.SequenceNumber),
		Title:         strings.TrimSpace(raw.Title),
		CrossListID:   strings.TrimSpace(raw.CrossList),
		Instructor:    primaryInstructor(raw.Faculty),
		Meetings:      []schedule.MeetingBlock{},
		Enrollment: schedule.Enrollment{
			Current: raw.Enrollment,
			Maximum: raw.MaximumEnrollment,
		},
	}

	for j, m := range raw.Meetings {
		blocks, err := meetingBlocks(m)
		if err != nil {
			return schedule.Section{}, fmt.Errorf("meeting %d: %w", j, err)
		}
		s.Meetings = append(s.Meetings, blocks...)
	}

	s.Mode = deliveryMode(raw.InstructionalMethod, len(s.Meetings) > 0)
	return s, nil
}

// meetingBlocks expands one raw meeting into a block per flagged weekday.
// A meeting without begin and end times is arranged and yields no blocks.
func meetingBlocks(m RawMeeting) ([]schedule.MeetingBlock, error) {
	begin, end := strings.TrimSpace(m.BeginTime), strings.TrimSpace(m.EndTime)
	if begin == "" && end == "" {
		return nil, nil
	}
	if begin == "" || end == "" {
		return nil, fmt.Errorf("%w: begin %q / end %q must both be set", ErrInvalidRecord, m.BeginTime, m.EndTime)
	}

	start, err := schedule.ParseClock(begin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	finish, err := schedule.ParseClock(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	flags := []struct {
		day schedule.Day
		set bool
	}{
		{schedule.Monday, m.Monday},
		{schedule.Tuesday, m.Tuesday},
		{schedule.Wednesday, m.Wednesday},
		{schedule.Thursday, m.Thursday},
		{schedule.Friday, m.Friday},
	}

	var blocks []schedule.MeetingBlock
	for _, f := range flags {
		if !f.set {
			continue
		}
		interval, err := schedule.NewTimeInterval(f.day, start, finish)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		blocks = append(blocks, schedule.NewMeetingBlock(
			interval,
			strings.TrimSpace(m.Building),
			strings.TrimSpace(m.Room),
			strings.TrimSpace(m.MeetingType),
		))
	}
	return blocks, nil
}

// primaryInstructor picks the primary faculty entry, else the first one.
// Entries without an email address carry no identity and yield nil.
func primaryInstructor(faculty []RawFaculty) *schedule.Instructor {
	if len(faculty) == 0 {
		return nil
	}
	chosen := faculty[0]
	for _, f := range faculty {
		if f.Primary {
			chosen = f
			break
		}
	}

	key := strings.ToLower(strings.TrimSpace(chosen.EmailAddress))
	if key == "" {
		return nil
	}
	return &schedule.Instructor{Key: key, Name: strings.TrimSpace(chosen.DisplayName)}
}

func deliveryMode(method string, scheduled bool) schedule.DeliveryMode {
	m := strings.ToLower(method)
	switch {
	case strings.Contains(m, "hybrid"):
		return schedule.Hybrid
	case strings.Contains(m, "online"), strings.Contains(m, "web"):
		return schedule.Online
	case !scheduled:
		return schedule.Arranged
	default:
		return schedule.InPerson
	}
}
