package schedule

import "fmt"

// Instructor identifies the person teaching a section.
// Two references denote the same instructor iff their Keys are equal.
type Instructor struct {
	// Key is the stable identity key (a normalized email address)
	Key string `json:"key" yaml:"key"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`
}

// MeetingBlock is one weekly recurring meeting of a section.
type MeetingBlock struct {
	Interval TimeInterval `json:"interval" yaml:"interval"`

	// Building and Room are nil when the meeting has no assigned location
	Building *string `json:"building,omitempty" yaml:"building,omitempty"`
	Room     *string `json:"room,omitempty" yaml:"room,omitempty"`

	// Type is a free-text label such as "Lecture" or "Lab"
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// NewMeetingBlock creates a MeetingBlock. Empty building or room strings are stored as nil.
func NewMeetingBlock(interval TimeInterval, building, room, meetingType string) MeetingBlock {
	return MeetingBlock{
		Interval: interval,
		Building: optional(building),
		Room:     optional(room),
		Type:     meetingType,
	}
}

// Location returns the building and room. ok is false unless both are set and non-empty.
func (m MeetingBlock) Location() (building, room string, ok bool) {
	if m.Building == nil || m.Room == nil || *m.Building == "" || *m.Room == "" {
		return "", "", false
	}
	return *m.Building, *m.Room, true
}

// Enrollment holds current and maximum seat counts.
type Enrollment struct {
	Current int `json:"current" yaml:"current"`
	Maximum int `json:"maximum" yaml:"maximum"`
}

// Add returns the element-wise sum of e and o.
func (e Enrollment) Add(o Enrollment) Enrollment {
	return Enrollment{Current: e.Current + o.Current, Maximum: e.Maximum + o.Maximum}
}

// Section is one scheduled offering of a course.
type Section struct {
	// ID is the unique section identifier (the CRN in registrar data)
	ID string `json:"id" yaml:"id"`

	// Subject is the subject code, e.g. "CSCD"
	Subject string `json:"subject" yaml:"subject"`

	// CatalogNumber is the course number within the subject, e.g. "440"
	CatalogNumber string `json:"catalogNumber" yaml:"catalogNumber"`

	// SectionCode distinguishes offerings of the same course, e.g. "001"
	SectionCode string `json:"sectionCode" yaml:"sectionCode"`

	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// CrossListID is the upstream cross-listing identifier, empty when absent
	CrossListID string `json:"crossListId,omitempty" yaml:"crossListId,omitempty"`

	// Instructor is nil when no instructor is assigned
	Instructor *Instructor `json:"instructor,omitempty" yaml:"instructor,omitempty"`

	// Meetings may be empty for online or arranged offerings
	Meetings []MeetingBlock `json:"meetings" yaml:"meetings"`

	Mode       DeliveryMode `json:"mode" yaml:"mode"`
	Enrollment Enrollment   `json:"enrollment" yaml:"enrollment"`

	// HasConflict is derived; only the conflict detector sets it
	HasConflict bool `json:"hasConflict" yaml:"hasConflict"`
}

// Code returns the display code, e.g. "CSCD 440-001".
func (s Section) Code() string {
	if s.SectionCode == "" {
		return s.Listing()
	}
	return fmt.Sprintf("%s-%s", s.Listing(), s.SectionCode)
}

// Listing returns the catalog listing, e.g. "CSCD 440".
func (s Section) Listing() string {
	return fmt.Sprintf("%s %s", s.Subject, s.CatalogNumber)
}

// ScheduledMeetings returns the meetings that carry a valid day.
func (s Section) ScheduledMeetings() []MeetingBlock {
	var out []MeetingBlock
	for _, m := range s.Meetings {
		if m.Interval.Day.Valid() {
			out = append(out, m)
		}
	}
	return out
}

// IsScheduled reports whether the section has at least one meeting with a valid day.
func (s Section) IsScheduled() bool {
	for _, m := range s.Meetings {
		if m.Interval.Day.Valid() {
			return true
		}
	}
	return false
}

// InstructorKey returns the instructor identity key, or "" when unassigned.
func (s Section) InstructorKey() string {
	if s.Instructor == nil {
		return ""
	}
	return s.Instructor.Key
}

// Clone returns a deep copy of s.
func (s Section) Clone() Section {
	out := s
	if s.Instructor != nil {
		inst := *s.Instructor
		out.Instructor = &inst
	}
	if s.Meetings != nil {
		out.Meetings = make([]MeetingBlock, len(s.Meetings))
		for i, m := range s.Meetings {
			out.Meetings[i] = m.clone()
		}
	}
	return out
}

// CloneSections deep-copies a slice of sections.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.Clone()
	}
	return out
}

func (m MeetingBlock) clone() MeetingBlock {
	out := m
	if m.Building != nil {
		b := *m.Building
		out.Building = &b
	}
	if m.Room != nil {
		r := *m.Room
		out.Room = &r
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
