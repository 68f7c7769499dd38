package integration

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/engine"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/ingest"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/stacking"
)

func runFile(t *testing.T, eng *engine.Engine, path string, filter engine.Filter) *engine.RunResult {
	t.Helper()
	sections, err := ingest.DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	result, err := eng.Run(context.Background(), &engine.RunRequest{Sections: sections, Filter: filter})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

func conflictIDs(result *engine.RunResult) []string {
	ids := make([]string, len(result.Conflicts))
	for i, r := range result.Conflicts {
		ids[i] = r.ID
	}
	sort.Strings(ids)
	return ids
}

func TestPipeline_FormatsAgree(t *testing.T) {
	eng := setupTestEngine(t)
	doc := generateTerm(7, 60)

	fromJSON := runFile(t, eng, writeTerm(t, doc, ingest.FormatJSON), engine.Filter{})
	fromYAML := runFile(t, eng, writeTerm(t, doc, ingest.FormatYAML), engine.Filter{})

	if !reflect.DeepEqual(fromJSON.Conflicts, fromYAML.Conflicts) {
		t.Error("JSON and YAML exports produced different conflicts")
	}
	if !reflect.DeepEqual(fromJSON.Groups, fromYAML.Groups) {
		t.Error("JSON and YAML exports produced different groups")
	}
	if !reflect.DeepEqual(fromJSON.Layout, fromYAML.Layout) {
		t.Error("JSON and YAML exports produced different layouts")
	}
}

func TestPipeline_OrderIndependent(t *testing.T) {
	eng := setupTestEngine(t)

	for _, seed := range []int64{1, 2, 3} {
		doc := generateTerm(seed, 50)
		forward := runFile(t, eng, writeTerm(t, doc, ingest.FormatJSON), engine.Filter{})
		backward := runFile(t, eng, writeTerm(t, reversed(doc), ingest.FormatJSON), engine.Filter{})

		if !reflect.DeepEqual(conflictIDs(forward), conflictIDs(backward)) {
			t.Errorf("seed %d: conflict set depends on input order", seed)
		}
		if forward.Summary != backward.Summary {
			t.Errorf("seed %d: summary %+v != %+v", seed, forward.Summary, backward.Summary)
		}
		if len(forward.Groups) != len(backward.Groups) {
			t.Errorf("seed %d: %d groups forward, %d backward", seed, len(forward.Groups), len(backward.Groups))
		}
	}
}

func TestPipeline_AliasesNeverConflictOrRender(t *testing.T) {
	eng := setupTestEngine(t)
	result := runFile(t, eng, writeTerm(t, generateTerm(11, 80), ingest.FormatJSON), engine.Filter{})

	hidden := stacking.Hidden(result.Links)
	if len(hidden) == 0 {
		t.Fatal("expected the generated term to contain stacked sections")
	}

	for _, s := range result.Sections {
		if hidden[s.ID] {
			t.Errorf("alias %s is in the display list", s.ID)
		}
	}
	for _, r := range result.Conflicts {
		if hidden[r.SectionA] || hidden[r.SectionB] {
			t.Errorf("conflict %s involves a hidden alias", r.ID)
		}
		if r.SectionA >= r.SectionB {
			t.Errorf("conflict %s is not normalized: %s, %s", r.ID, r.SectionA, r.SectionB)
		}
		if r.OverlapEnd <= r.OverlapStart {
			t.Errorf("conflict %s has an empty overlap", r.ID)
		}
	}
}

func TestPipeline_EnrollmentConserved(t *testing.T) {
	eng := setupTestEngine(t)
	doc := generateTerm(5, 70)
	result := runFile(t, eng, writeTerm(t, doc, ingest.FormatJSON), engine.Filter{})

	var raw, grouped schedule.Enrollment
	for _, s := range doc.Sections {
		raw = raw.Add(schedule.Enrollment{Current: s.Enrollment, Maximum: s.MaximumEnrollment})
	}
	for _, g := range result.Groups {
		grouped = grouped.Add(g.Enrollment)
	}
	if raw != grouped {
		t.Errorf("expected group enrollment %+v to equal raw enrollment %+v", grouped, raw)
	}
}

func TestPipeline_LayoutColumns(t *testing.T) {
	eng := setupTestEngine(t)
	result := runFile(t, eng, writeTerm(t, generateTerm(13, 90), ingest.FormatJSON), engine.Filter{})

	meetings := 0
	for _, g := range result.Groups {
		meetings += len(g.Meetings)
	}
	placed := 0
	for day, placements := range result.Layout {
		placed += len(placements)
		for i, a := range placements {
			if a.Meeting.Interval.Day != day {
				t.Errorf("%s: placement for %s is on %s", day, a.GroupID, a.Meeting.Interval.Day)
			}
			if a.Column < 0 || a.Column >= a.TotalColumns {
				t.Errorf("%s: group %s column %d outside %d", day, a.GroupID, a.Column, a.TotalColumns)
			}
			for _, b := range placements[i+1:] {
				if !schedule.Overlaps(a.Meeting.Interval, b.Meeting.Interval) {
					continue
				}
				if a.Column == b.Column {
					t.Errorf("%s: overlapping groups %s and %s share column %d", day, a.GroupID, b.GroupID, a.Column)
				}
				if a.TotalColumns != b.TotalColumns {
					t.Errorf("%s: overlapping groups %s and %s disagree on total columns", day, a.GroupID, b.GroupID)
				}
			}
		}
	}
	if placed != meetings {
		t.Errorf("expected every group meeting placed once: %d meetings, %d placements", meetings, placed)
	}
}

func TestPipeline_SubjectFilter(t *testing.T) {
	eng := setupTestEngine(t)
	path := writeTerm(t, generateTerm(17, 60), ingest.FormatJSON)

	all := runFile(t, eng, path, engine.Filter{})
	cscd := runFile(t, eng, path, engine.Filter{Subjects: []string{"CSCD"}})

	for _, s := range cscd.Sections {
		if s.Subject != "CSCD" {
			t.Errorf("section %s has subject %s", s.ID, s.Subject)
		}
	}
	if cscd.Summary.Total > all.Summary.Total {
		t.Errorf("filtered run found more conflicts (%d) than the full run (%d)", cscd.Summary.Total, all.Summary.Total)
	}
}
