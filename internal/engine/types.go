package engine

import (
	"fmt"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/conflict"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/groups"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/stacking"
)

// RunRequest represents a request to analyze a section list.
type RunRequest struct {
	// Sections is the raw, already validated section list
	Sections []schedule.Section

	// Filter selects which sections are displayed and analyzed
	Filter Filter
}

// RunResult contains the products of a pipeline run.
type RunResult struct {
	// Sections is the filtered display list with conflict flags set
	Sections []schedule.Section `json:"sections"`

	Conflicts []conflict.Record `json:"conflicts"`

	// Links maps every linked section id to its group; standalone sections are absent
	Links map[string]*stacking.LinkedGroup `json:"-"`

	Groups []groups.CourseGroup `json:"groups"`

	// Layout holds the column placements of every group meeting, per day
	Layout map[schedule.Day][]GroupPlacement `json:"layout"`

	Summary conflict.Summary `json:"summary"`
}

// Group returns the group with the given id.
func (r *RunResult) Group(id string) (groups.CourseGroup, bool) {
	for _, g := range r.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return groups.CourseGroup{}, false
}

// GroupPlacement is the grid position of one group meeting.
type GroupPlacement struct {
	GroupID string                `json:"groupId"`
	Meeting schedule.MeetingBlock `json:"meeting"`

	// Column is the zero-based column index
	Column int `json:"column"`

	// TotalColumns is the column count shared by the meeting's overlap cluster
	TotalColumns int `json:"totalColumns"`
}

// BlockID returns the layout block id of a group's n-th meeting.
func BlockID(groupID string, n int) string {
	return fmt.Sprintf("%s#%d", groupID, n)
}
