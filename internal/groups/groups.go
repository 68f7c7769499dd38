// Package groups turns a section list and its stacking links into renderable
// course groups: one entry per physical offering.
package groups

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/stacking"
)

// CourseGroup is one physical offering, possibly listed under several catalog numbers.
type CourseGroup struct {
	// ID is the canonical section id
	ID string `json:"id"`

	Canonical schedule.Section   `json:"canonical"`
	Aliases   []schedule.Section `json:"aliases"`

	// DisplayCode is the merged catalog code, e.g. "477/577"
	DisplayCode string `json:"displayCode"`
	Title       string `json:"title,omitempty"`

	// Enrollment sums canonical and aliases
	Enrollment schedule.Enrollment `json:"enrollment"`

	IsStandalone bool `json:"isStandalone"`

	// HasConflict is true when any member section has a conflict
	HasConflict bool `json:"hasConflict"`

	// Meetings are the canonical section's scheduled meetings, used for layout
	Meetings []schedule.MeetingBlock `json:"meetings"`
}

// Label returns the subject and display code, e.g. "CSCD 477/577".
// Subject-qualified display codes are returned as-is.
func (g CourseGroup) Label() string {
	if g.Canonical.Subject == "" || strings.Contains(g.DisplayCode, " ") {
		return g.DisplayCode
	}
	return fmt.Sprintf("%s %s", g.Canonical.Subject, g.DisplayCode)
}

// FillRate returns Current/Maximum rounded to four places, or zero when Maximum is zero.
func (g CourseGroup) FillRate() decimal.Decimal {
	if g.Enrollment.Maximum <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(g.Enrollment.Current)).
		Div(decimal.NewFromInt(int64(g.Enrollment.Maximum))).
		Round(4)
}

// Members returns the canonical section followed by the aliases.
func (g CourseGroup) Members() []schedule.Section {
	out := make([]schedule.Section, 0, 1+len(g.Aliases))
	out = append(out, g.Canonical)
	return append(out, g.Aliases...)
}

// Build produces one CourseGroup per canonical or standalone section.
//
// Groups are ordered by the first appearance of any of their members in
// sections. Members present in sections are taken from there, so conflict
// flags set by the detector are carried over; members that were filtered
// out of sections are taken from the link group.
func Build(sections []schedule.Section, links map[string]*stacking.LinkedGroup) []CourseGroup {
	byID := make(map[string]schedule.Section, len(sections))
	for _, s := range sections {
		if _, ok := byID[s.ID]; !ok {
			byID[s.ID] = s
		}
	}
	resolve := func(s schedule.Section) schedule.Section {
		if current, ok := byID[s.ID]; ok {
			return current
		}
		return s
	}

	out := []CourseGroup{}
	emitted := make(map[*stacking.LinkedGroup]bool)
	standalone := make(map[string]bool)

	for _, s := range sections {
		link, ok := links[s.ID]
		if !ok {
			if standalone[s.ID] {
				continue
			}
			standalone[s.ID] = true
			out = append(out, newGroup(stacking.Singleton(s), resolve, true))
			continue
		}
		if emitted[link] {
			continue
		}
		emitted[link] = true
		out = append(out, newGroup(link, resolve, false))
	}

	return out
}

func newGroup(link *stacking.LinkedGroup, resolve func(schedule.Section) schedule.Section, standalone bool) CourseGroup {
	canonical := resolve(link.Canonical)
	g := CourseGroup{
		ID:           canonical.ID,
		Canonical:    canonical,
		Aliases:      []schedule.Section{},
		DisplayCode:  link.DisplayCode,
		Title:        canonical.Title,
		IsStandalone: standalone,
		HasConflict:  canonical.HasConflict,
		Meetings:     canonical.ScheduledMeetings(),
	}
	g.Enrollment = canonical.Enrollment

	for _, a := range link.Aliases {
		alias := resolve(a)
		g.Aliases = append(g.Aliases, alias)
		g.Enrollment = g.Enrollment.Add(alias.Enrollment)
		g.HasConflict = g.HasConflict || alias.HasConflict
	}
	if g.Meetings == nil {
		g.Meetings = []schedule.MeetingBlock{}
	}
	return g
}
