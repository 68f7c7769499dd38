package stacking

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// LinkSource records which rule produced a LinkedGroup.
type LinkSource int

// Link sources.
const (
	Standalone LinkSource = iota
	CrossListed
	ScheduleMatch
)

// String returns the source name.
func (s LinkSource) String() string {
	switch s {
	case Standalone:
		return "standalone"
	case CrossListed:
		return "cross-listed"
	case ScheduleMatch:
		return "schedule-match"
	default:
		return fmt.Sprintf("LinkSource(%d)", int(s))
	}
}

// MarshalText encodes the source as its name.
func (s LinkSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LinkedGroup is one physical offering and every listing that shares it.
type LinkedGroup struct {
	// Canonical is the lowest-numbered listing
	Canonical schedule.Section `json:"canonical"`

	// Aliases are the remaining listings in ascending catalog order
	Aliases []schedule.Section `json:"aliases"`

	// Enrollment is the sum over canonical and aliases
	Enrollment schedule.Enrollment `json:"enrollment"`

	// DisplayCode joins catalog numbers in ascending order, e.g. "440/540"
	DisplayCode string `json:"displayCode"`

	Source LinkSource `json:"source"`
}

// Members returns the canonical section followed by the aliases.
func (g *LinkedGroup) Members() []schedule.Section {
	out := make([]schedule.Section, 0, 1+len(g.Aliases))
	out = append(out, g.Canonical)
	return append(out, g.Aliases...)
}

// IsAlias reports whether sectionID is one of the group's aliases.
func (g *LinkedGroup) IsAlias(sectionID string) bool {
	for _, a := range g.Aliases {
		if a.ID == sectionID {
			return true
		}
	}
	return false
}

// Singleton returns the group representation of a standalone section.
func Singleton(s schedule.Section) *LinkedGroup {
	return newGroup([]schedule.Section{s}, Standalone)
}

// Link groups stacked sections. The returned map has an entry for every
// member (canonical and alias) of every group with two or more listings;
// members of the same group share one *LinkedGroup. Sections that are not
// linked to anything are absent.
func Link(sections []schedule.Section) map[string]*LinkedGroup {
	links := make(map[string]*LinkedGroup)
	consumed := make(map[string]bool)

	register := func(members []schedule.Section, source LinkSource) {
		if len(members) < 2 {
			return
		}
		g := newGroup(members, source)
		for _, m := range g.Members() {
			links[m.ID] = g
			consumed[m.ID] = true
		}
	}

	// Explicit cross-listing takes precedence over the schedule heuristic.
	for _, bucket := range buckets(sections, crossListKey) {
		register(distinctListings(bucket), CrossListed)
	}

	var remaining []schedule.Section
	for _, s := range sections {
		if !consumed[s.ID] {
			remaining = append(remaining, s)
		}
	}
	for _, bucket := range buckets(remaining, scheduleKey) {
		register(distinctListings(bucket), ScheduleMatch)
	}

	return links
}

// Hidden returns the ids of every alias section in links.
func Hidden(links map[string]*LinkedGroup) map[string]bool {
	hidden := make(map[string]bool)
	for id, g := range links {
		if g.IsAlias(id) {
			hidden[id] = true
		}
	}
	return hidden
}

// buckets groups sections by key, skipping sections whose key is empty.
// Buckets are returned in order of first appearance.
func buckets(sections []schedule.Section, key func(schedule.Section) string) [][]schedule.Section {
	index := make(map[string]int)
	var out [][]schedule.Section
	for _, s := range sections {
		k := key(s)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], s)
	}
	return out
}

func crossListKey(s schedule.Section) string {
	return strings.TrimSpace(s.CrossListID)
}

// scheduleKey is the instructor plus a normalized rendering of the meeting-block set.
func scheduleKey(s schedule.Section) string {
	key := s.InstructorKey()
	meetings := meetingKey(s)
	if key == "" || meetings == "" {
		return ""
	}
	return fmt.Sprintf("%q %s", key, meetings)
}

// meetingKey renders the meeting-block set independent of block order.
// Sections with no meetings or an unscheduled day have no key.
func meetingKey(s schedule.Section) string {
	if len(s.Meetings) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.Meetings))
	for _, m := range s.Meetings {
		if !m.Interval.Day.Valid() {
			return ""
		}
		// quoted so separators inside building or room names cannot collide
		parts = append(parts, fmt.Sprintf("%d %d %d %q %q",
			m.Interval.Day, m.Interval.Start, m.Interval.End, deref(m.Building), deref(m.Room)))
	}
	slices.Sort(parts)
	return strings.Join(parts, " ")
}

// SameMeetings reports whether a and b meet at the same days, times and
// locations. Two sections without scheduled meetings are the same.
func SameMeetings(a, b schedule.Section) bool {
	return meetingKey(a) == meetingKey(b)
}

// Divergent returns the aliases of g whose scheduled meetings differ from the
// canonical's. A cross-listed alias can be booked into its own room or slot;
// those meetings still occupy an instructor and a room.
func (g *LinkedGroup) Divergent() []schedule.Section {
	var out []schedule.Section
	for _, a := range g.Aliases {
		if meetingKey(a) != "" && !SameMeetings(g.Canonical, a) {
			out = append(out, a)
		}
	}
	return out
}

// distinctListings keeps the first section of each listing in canonical order.
func distinctListings(bucket []schedule.Section) []schedule.Section {
	sorted := slices.Clone(bucket)
	slices.SortStableFunc(sorted, schedule.CompareSections)

	seen := make(map[string]bool)
	var out []schedule.Section
	for _, s := range sorted {
		if seen[s.Listing()] {
			continue
		}
		seen[s.Listing()] = true
		out = append(out, s)
	}
	return out
}

// newGroup builds a group from members already in canonical order.
func newGroup(members []schedule.Section, source LinkSource) *LinkedGroup {
	g := &LinkedGroup{
		Canonical: members[0].Clone(),
		Aliases:   []schedule.Section{},
		Source:    source,
	}
	for _, m := range members[1:] {
		g.Aliases = append(g.Aliases, m.Clone())
	}
	for _, m := range members {
		g.Enrollment = g.Enrollment.Add(m.Enrollment)
	}
	g.DisplayCode = DisplayCode(members)
	return g
}

// DisplayCode joins the catalog numbers of sections in ascending order with "/".
// When the sections span several subjects each part is prefixed by its subject.
func DisplayCode(sections []schedule.Section) string {
	if len(sections) == 0 {
		return ""
	}
	sorted := slices.Clone(sections)
	slices.SortStableFunc(sorted, schedule.CompareSections)

	mixed := false
	for _, s := range sorted[1:] {
		if s.Subject != sorted[0].Subject {
			mixed = true
			break
		}
	}

	parts := make([]string, 0, len(sorted))
	seen := make(map[string]bool)
	for _, s := range sorted {
		part := s.CatalogNumber
		if mixed {
			part = s.Listing()
		}
		if seen[part] {
			continue
		}
		seen[part] = true
		parts = append(parts, part)
	}
	return strings.Join(parts, "/")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
