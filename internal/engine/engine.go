// Package engine runs the schedule analysis pipeline.
//
// The engine package is the orchestration layer between the CLI and the pure
// analysis packages. A run links stacked sections, filters the display list,
// detects conflicts, builds course groups and lays each weekday out into
// columns.
//
// Key components:
//   - Engine: Main orchestrator that coordinates a pipeline run
//   - Filter: Display selection applied after linking
//   - RunResult: Every intermediate and final product of a run
package engine

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/conflict"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/groups"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/layout"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/stacking"
)

// Engine orchestrates pipeline runs.
// It is the main API surface called by the CLI.
type Engine struct {
	logger *zap.Logger
}

// New creates a new Engine. A nil logger disables logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run executes the full pipeline over req.Sections.
//
// The context is checked between stages; a cancelled run returns ctx.Err()
// and no partial result. The input slice is never modified.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if req == nil {
		req = &RunRequest{}
	}

	links := stacking.Link(req.Sections)
	e.logger.Debug("linked stacked sections",
		zap.Int("sections", len(req.Sections)),
		zap.Int("linked", len(links)),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	display := req.Filter.Apply(req.Sections, links)
	e.logger.Debug("filtered display list", zap.Int("displayed", len(display)))

	checked, owners := display, map[string]string{}
	if !req.Filter.IncludeAliases {
		checked, owners = withDivergentAliases(display, links)
	}
	records := withoutStackedPairs(conflict.Detect(checked), owners)
	checked = conflict.Mark(checked, records)
	display = checked[:len(display)]
	summary := conflict.Summarize(records)
	e.logger.Debug("detected conflicts",
		zap.Int("checked", len(checked)),
		zap.Int("instructor", summary.Instructor),
		zap.Int("room", summary.Room),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	courseGroups := groups.Build(checked, links)
	e.logger.Debug("built course groups", zap.Int("groups", len(courseGroups)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	week := layoutGroups(courseGroups)
	e.logger.Debug("laid out week", zap.Int("days", len(week)))

	e.logger.Info("schedule analysis complete",
		zap.Int("sections", len(display)),
		zap.Int("groups", len(courseGroups)),
		zap.Int("conflicts", summary.Total),
		zap.Int("conflicted_sections", summary.Sections),
	)

	return &RunResult{
		Sections:  display,
		Conflicts: records,
		Links:     links,
		Groups:    courseGroups,
		Layout:    week,
		Summary:   summary,
	}, nil
}

// withDivergentAliases appends the hidden aliases of displayed canonicals that
// meet somewhere other than their canonical. owners maps each appended alias
// to its canonical's id.
func withDivergentAliases(display []schedule.Section, links map[string]*stacking.LinkedGroup) ([]schedule.Section, map[string]string) {
	owners := make(map[string]string)
	var extra []schedule.Section
	for _, s := range display {
		link, ok := links[s.ID]
		if !ok || link.Canonical.ID != s.ID {
			continue
		}
		for _, alias := range link.Divergent() {
			extra = append(extra, alias)
			owners[alias.ID] = s.ID
		}
	}
	if len(extra) == 0 {
		return display, owners
	}
	return append(slices.Clone(display), extra...), owners
}

// withoutStackedPairs drops records between members of the same stacked group.
func withoutStackedPairs(records []conflict.Record, owners map[string]string) []conflict.Record {
	if len(owners) == 0 {
		return records
	}
	owner := func(id string) string {
		if o, ok := owners[id]; ok {
			return o
		}
		return id
	}
	out := make([]conflict.Record, 0, len(records))
	for _, r := range records {
		if owner(r.SectionA) == owner(r.SectionB) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// layoutGroups places every meeting of every group, keyed by day.
func layoutGroups(courseGroups []groups.CourseGroup) map[schedule.Day][]GroupPlacement {
	var blocks []layout.Block
	owners := make(map[string]ownedMeeting)

	for _, g := range courseGroups {
		for n, m := range g.Meetings {
			id := BlockID(g.ID, n)
			blocks = append(blocks, layout.Block{ID: id, Interval: m.Interval})
			owners[id] = ownedMeeting{groupID: g.ID, meeting: m}
		}
	}

	out := make(map[schedule.Day][]GroupPlacement)
	for day, placements := range layout.LayoutWeek(blocks) {
		for _, p := range placements {
			owner := owners[p.ID]
			out[day] = append(out[day], GroupPlacement{
				GroupID:      owner.groupID,
				Meeting:      owner.meeting,
				Column:       p.Column,
				TotalColumns: p.TotalColumns,
			})
		}
	}
	return out
}

type ownedMeeting struct {
	groupID string
	meeting schedule.MeetingBlock
}
