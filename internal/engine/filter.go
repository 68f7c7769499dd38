package engine

import (
	"strings"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/stacking"
)

// Filter selects the display list.
type Filter struct {
	// Subjects keeps only sections with one of these subjects (case-insensitive); empty keeps all
	Subjects []string

	// Instructor keeps only sections whose instructor key or name contains this text (case-insensitive)
	Instructor string

	// IncludeAliases keeps stacked alias sections in the display list
	IncludeAliases bool
}

// Apply returns the sections of in that pass the filter, in input order.
// Alias sections are dropped unless IncludeAliases is set.
func (f Filter) Apply(in []schedule.Section, links map[string]*stacking.LinkedGroup) []schedule.Section {
	hidden := map[string]bool{}
	if !f.IncludeAliases {
		hidden = stacking.Hidden(links)
	}

	subjects := make(map[string]bool, len(f.Subjects))
	for _, s := range f.Subjects {
		if s = strings.TrimSpace(s); s != "" {
			subjects[strings.ToUpper(s)] = true
		}
	}
	instructor := strings.ToLower(strings.TrimSpace(f.Instructor))

	out := make([]schedule.Section, 0, len(in))
	for _, s := range in {
		if hidden[s.ID] {
			continue
		}
		if len(subjects) > 0 && !subjects[strings.ToUpper(s.Subject)] {
			continue
		}
		if instructor != "" && !matchesInstructor(s.Instructor, instructor) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesInstructor(inst *schedule.Instructor, needle string) bool {
	if inst == nil {
		return false
	}
	return strings.Contains(inst.Key, needle) || strings.Contains(strings.ToLower(inst.Name), needle)
}
