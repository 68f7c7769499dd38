package stacking

import (
	"reflect"
	"testing"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

func mwf(start, end int, building, room string) []schedule.MeetingBlock {
	var out []schedule.MeetingBlock
	for _, d := range []schedule.Day{schedule.Monday, schedule.Wednesday, schedule.Friday} {
		out = append(out, schedule.NewMeetingBlock(schedule.MustTimeInterval(d, start, end), building, room, "Lecture"))
	}
	return out
}

func listing(id, subject, catalog, instructorKey string, current, maximum int, meetings []schedule.MeetingBlock) schedule.Section {
	s := schedule.Section{
		ID:            id,
		Subject:       subject,
		CatalogNumber: catalog,
		SectionCode:   "040",
		Meetings:      meetings,
		Enrollment:    schedule.Enrollment{Current: current, Maximum: maximum},
	}
	if instructorKey != "" {
		s.Instructor = &schedule.Instructor{Key: instructorKey, Name: instructorKey}
	}
	return s
}

func TestLink_ScheduleMatch(t *testing.T) {
	grad := listing("20002", "CSCD", "540", "smith@example.edu", 8, 10, mwf(600, 650, "CEB", "101"))
	undergrad := listing("20001", "CSCD", "440", "smith@example.edu", 20, 30, mwf(600, 650, "CEB", "101"))
	other := listing("20003", "CSCD", "300", "jones@example.edu", 25, 30, mwf(600, 650, "CEB", "102"))

	links := Link([]schedule.Section{grad, undergrad, other})

	if len(links) != 2 {
		t.Fatalf("expected 2 linked sections, got %d", len(links))
	}
	g := links["20001"]
	if g == nil || links["20002"] != g {
		t.Fatal("expected both listings to share one group")
	}
	if g.Canonical.ID != "20001" {
		t.Errorf("expected canonical 20001 (lowest catalog number), got %s", g.Canonical.ID)
	}
	if len(g.Aliases) != 1 || g.Aliases[0].ID != "20002" {
		t.Errorf("unexpected aliases %+v", g.Aliases)
	}
	if g.Enrollment != (schedule.Enrollment{Current: 28, Maximum: 40}) {
		t.Errorf("unexpected combined enrollment %+v", g.Enrollment)
	}
	if g.DisplayCode != "440/540" {
		t.Errorf("expected display code 440/540, got %q", g.DisplayCode)
	}
	if g.Source != ScheduleMatch {
		t.Errorf("expected schedule-match source, got %s", g.Source)
	}
	if _, ok := links["20003"]; ok {
		t.Error("standalone section should not appear in links")
	}
}

func TestLink_MeetingOrderDoesNotMatter(t *testing.T) {
	meetings := mwf(600, 650, "CEB", "101")
	reversed := []schedule.MeetingBlock{meetings[2], meetings[1], meetings[0]}

	a := listing("1", "CSCD", "477", "smith@example.edu", 10, 20, meetings)
	b := listing("2", "CSCD", "577", "smith@example.edu", 5, 10, reversed)

	links := Link([]schedule.Section{a, b})
	if links["1"] == nil || links["1"] != links["2"] {
		t.Fatal("expected sections with the same meeting set to be linked")
	}
	if links["1"].DisplayCode != "477/577" {
		t.Errorf("unexpected display code %q", links["1"].DisplayCode)
	}
}

func TestLink_RequiresExactMatch(t *testing.T) {
	base := listing("1", "CSCD", "440", "smith@example.edu", 10, 20, mwf(600, 650, "CEB", "101"))

	tests := []struct {
		name  string
		other schedule.Section
	}{
		{"different instructor", listing("2", "CSCD", "540", "jones@example.edu", 5, 10, mwf(600, 650, "CEB", "101"))},
		{"different room", listing("2", "CSCD", "540", "smith@example.edu", 5, 10, mwf(600, 650, "CEB", "102"))},
		{"different end time", listing("2", "CSCD", "540", "smith@example.edu", 5, 10, mwf(600, 655, "CEB", "101"))},
		{"subset of days", listing("2", "CSCD", "540", "smith@example.edu", 5, 10, mwf(600, 650, "CEB", "101")[:2])},
		{"same listing", listing("2", "CSCD", "440", "smith@example.edu", 5, 10, mwf(600, 650, "CEB", "101"))},
		{"no instructor", listing("2", "CSCD", "540", "", 5, 10, mwf(600, 650, "CEB", "101"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if links := Link([]schedule.Section{base, tt.other}); len(links) != 0 {
				t.Errorf("expected no links, got %d", len(links))
			}
		})
	}
}

func TestLink_NoMeetingsNeverLinkedBySchedule(t *testing.T) {
	a := listing("1", "CSCD", "440", "smith@example.edu", 10, 20, nil)
	b := listing("2", "CSCD", "540", "smith@example.edu", 5, 10, nil)

	if links := Link([]schedule.Section{a, b}); len(links) != 0 {
		t.Errorf("expected unscheduled sections to stay unlinked, got %d links", len(links))
	}
}

func TestLink_CrossListTakesPrecedence(t *testing.T) {
	// Cross-listed by the registrar even though the rooms differ.
	a := listing("1", "CSCD", "440", "smith@example.edu", 10, 20, mwf(600, 650, "CEB", "101"))
	a.CrossListID = "XL7"
	b := listing("2", "EENG", "440", "smith@example.edu", 3, 5, mwf(600, 650, "CEB", "999"))
	b.CrossListID = "XL7"
	// Would schedule-match a, but a is already consumed by its cross-list.
	c := listing("3", "CSCD", "540", "smith@example.edu", 4, 10, mwf(600, 650, "CEB", "101"))

	links := Link([]schedule.Section{a, b, c})

	g := links["1"]
	if g == nil || links["2"] != g {
		t.Fatal("expected cross-listed sections to be linked")
	}
	if g.Source != CrossListed {
		t.Errorf("expected cross-listed source, got %s", g.Source)
	}
	if g.DisplayCode != "CSCD 440/EENG 440" {
		t.Errorf("expected subject-qualified display code, got %q", g.DisplayCode)
	}
	if _, ok := links["3"]; ok {
		t.Error("section 3 should not be linked to an already cross-listed section")
	}
}

func TestLink_DuplicateListingStaysStandalone(t *testing.T) {
	meetings := mwf(600, 650, "CEB", "101")
	a := listing("1", "CSCD", "440", "smith@example.edu", 10, 20, meetings)
	dup := listing("2", "CSCD", "440", "smith@example.edu", 1, 20, meetings)
	grad := listing("3", "CSCD", "540", "smith@example.edu", 5, 10, meetings)

	links := Link([]schedule.Section{a, dup, grad})
	if links["1"] == nil || links["3"] != links["1"] {
		t.Fatal("expected 440 and 540 to be linked")
	}
	if _, ok := links["2"]; ok {
		t.Error("second section of an already-present listing should stay standalone")
	}
}

func TestLink_Deterministic(t *testing.T) {
	sections := []schedule.Section{
		listing("1", "CSCD", "540", "smith@example.edu", 1, 2, mwf(600, 650, "CEB", "101")),
		listing("2", "CSCD", "440", "smith@example.edu", 3, 4, mwf(600, 650, "CEB", "101")),
		listing("3", "CSCD", "427", "jones@example.edu", 5, 6, mwf(700, 750, "CEB", "101")),
		listing("4", "CSCD", "527", "jones@example.edu", 7, 8, mwf(700, 750, "CEB", "101")),
	}
	first := Link(sections)
	second := Link(sections)
	if !reflect.DeepEqual(first, second) {
		t.Error("Link returned different output for identical input")
	}
}

func TestLink_EmptyInput(t *testing.T) {
	if links := Link(nil); len(links) != 0 {
		t.Errorf("expected empty links, got %d", len(links))
	}
}

func TestHidden(t *testing.T) {
	a := listing("1", "CSCD", "440", "smith@example.edu", 10, 20, mwf(600, 650, "CEB", "101"))
	b := listing("2", "CSCD", "540", "smith@example.edu", 5, 10, mwf(600, 650, "CEB", "101"))

	hidden := Hidden(Link([]schedule.Section{a, b}))
	if !hidden["2"] || hidden["1"] || len(hidden) != 1 {
		t.Errorf("unexpected hidden set %v", hidden)
	}
}

func TestSingleton(t *testing.T) {
	s := listing("9", "CSCD", "210", "smith@example.edu", 12, 30, nil)
	g := Singleton(s)
	if g.Canonical.ID != "9" || len(g.Aliases) != 0 {
		t.Errorf("unexpected singleton %+v", g)
	}
	if g.DisplayCode != "210" || g.Enrollment.Current != 12 || g.Source != Standalone {
		t.Errorf("unexpected singleton fields %+v", g)
	}
}

func TestDisplayCode_Empty(t *testing.T) {
	if got := DisplayCode(nil); got != "" {
		t.Errorf("DisplayCode(nil) = %q", got)
	}
}

func TestLink_SeparatorCharactersInLocation(t *testing.T) {
	a := listing("30001", "CSCD", "440", "smith@example.edu", 10, 20, mwf(600, 650, "A/B", "C"))
	b := listing("30002", "CSCD", "540", "smith@example.edu", 5, 10, mwf(600, 650, "A", "B/C"))

	links := Link([]schedule.Section{a, b})

	if len(links) != 0 {
		t.Errorf("expected sections in different rooms to stay unlinked, got %d linked", len(links))
	}
}

func TestSameMeetings(t *testing.T) {
	base := listing("1", "CSCD", "440", "smith@example.edu", 0, 0, mwf(600, 650, "CEB", "101"))
	reversed := mwf(600, 650, "CEB", "101")
	reversed[0], reversed[2] = reversed[2], reversed[0]
	unscheduled := listing("5", "CSCD", "440", "", 0, 0, nil)

	tests := []struct {
		name  string
		other schedule.Section
		want  bool
	}{
		{"identical", listing("2", "MATH", "440", "jones@example.edu", 0, 0, mwf(600, 650, "CEB", "101")), true},
		{"block order", listing("3", "CSCD", "540", "", 0, 0, reversed), true},
		{"different room", listing("4", "CSCD", "540", "", 0, 0, mwf(600, 650, "CEB", "102")), false},
		{"different time", listing("6", "CSCD", "540", "", 0, 0, mwf(610, 650, "CEB", "101")), false},
		{"unscheduled", unscheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameMeetings(base, tt.other); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if !SameMeetings(unscheduled, listing("7", "CSCD", "101", "", 0, 0, nil)) {
		t.Error("expected two unscheduled sections to have the same meetings")
	}
}

func TestLinkedGroup_Divergent(t *testing.T) {
	a := listing("1", "CSCD", "440", "smith@example.edu", 10, 20, mwf(600, 650, "CEB", "101"))
	a.CrossListID = "XL7"
	same := listing("2", "CSCD", "540", "smith@example.edu", 3, 5, mwf(600, 650, "CEB", "101"))
	same.CrossListID = "XL7"
	moved := listing("3", "EENG", "440", "smith@example.edu", 3, 5, mwf(600, 650, "CEB", "999"))
	moved.CrossListID = "XL7"
	unscheduled := listing("4", "MATH", "440", "", 1, 5, nil)
	unscheduled.CrossListID = "XL7"

	g := Link([]schedule.Section{a, same, moved, unscheduled})["1"]
	if g == nil || g.Canonical.ID != "1" {
		t.Fatalf("expected section 1 to be canonical, got %+v", g)
	}

	var ids []string
	for _, s := range g.Divergent() {
		ids = append(ids, s.ID)
	}
	if !reflect.DeepEqual(ids, []string{"3"}) {
		t.Errorf("expected divergent aliases [3], got %v", ids)
	}
}
