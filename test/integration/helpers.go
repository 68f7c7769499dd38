package integration

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/engine"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/ingest"
)

// dayPattern is a set of meeting days as encoded in a raw export.
type dayPattern struct {
	monday, tuesday, wednesday, thursday, friday bool
}

var (
	patterns = []dayPattern{
		{monday: true, wednesday: true, friday: true},
		{tuesday: true, thursday: true},
		{monday: true, wednesday: true},
		{friday: true},
	}
	slots = [][2]string{
		{"0800", "0850"}, {"0830", "0945"}, {"0900", "0950"}, {"1000", "1050"},
		{"1030", "1145"}, {"1200", "1250"}, {"1300", "1415"}, {"1330", "1445"},
	}
	instructors = []string{"ada", "ben", "cy", "dee", "eli", "fay"}
	rooms       = []string{"101", "105", "205", "310"}
)

// generateTerm builds a deterministic raw export of roughly n sections.
// About one in six sections is duplicated as a stacked graduate listing and
// about one in eight is online.
func generateTerm(seed int64, n int) ingest.Document {
	rng := rand.New(rand.NewSource(seed))
	doc := ingest.Document{Term: "202640"}

	for i := 0; i < n; i++ {
		catalog := 100 + rng.Intn(400)
		who := instructors[rng.Intn(len(instructors))]
		raw := ingest.RawSection{
			ID:                fmt.Sprintf("%05d", 10000+i*2),
			Subject:           []string{"CSCD", "CYBR"}[rng.Intn(2)],
			CourseNumber:      fmt.Sprintf("%d", catalog),
			SequenceNumber:    fmt.Sprintf("%03d", 1+rng.Intn(3)),
			Title:             fmt.Sprintf("Course %d", catalog),
			Enrollment:        rng.Intn(30),
			MaximumEnrollment: 30,
			Faculty:           []ingest.RawFaculty{{DisplayName: who, EmailAddress: who + "@example.edu", Primary: true}},
		}

		if rng.Intn(8) == 0 {
			raw.InstructionalMethod = "Online"
		} else {
			p := patterns[rng.Intn(len(patterns))]
			slot := slots[rng.Intn(len(slots))]
			raw.Meetings = []ingest.RawMeeting{{
				BeginTime: slot[0], EndTime: slot[1],
				Monday: p.monday, Tuesday: p.tuesday, Wednesday: p.wednesday, Thursday: p.thursday, Friday: p.friday,
				Building: "CEB", Room: rooms[rng.Intn(len(rooms))], MeetingType: "CLAS",
			}}
		}
		doc.Sections = append(doc.Sections, raw)

		if rng.Intn(6) == 0 && catalog < 400 {
			grad := raw
			grad.ID = fmt.Sprintf("%05d", 10000+i*2+1)
			grad.CourseNumber = fmt.Sprintf("%d", catalog+100)
			grad.Enrollment = rng.Intn(10)
			grad.MaximumEnrollment = 10
			doc.Sections = append(doc.Sections, grad)
		}
	}
	return doc
}

// writeTerm writes doc to a file in a temp dir and returns its path.
func writeTerm(t *testing.T, doc ingest.Document, format ingest.Format) string {
	t.Helper()

	var (
		data []byte
		err  error
	)
	switch format {
	case ingest.FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case ingest.FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		t.Fatalf("unsupported format %s", format)
	}
	if err != nil {
		t.Fatalf("failed to encode term: %v", err)
	}

	path := filepath.Join(t.TempDir(), "term."+string(format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write term: %v", err)
	}
	return path
}

func setupTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(zaptest.NewLogger(t))
}

// reversed returns a reversed copy of doc's sections.
func reversed(doc ingest.Document) ingest.Document {
	out := ingest.Document{Term: doc.Term, Sections: make([]ingest.RawSection, len(doc.Sections))}
	for i, s := range doc.Sections {
		out.Sections[len(doc.Sections)-1-i] = s
	}
	return out
}
