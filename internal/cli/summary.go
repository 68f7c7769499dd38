package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/conflict"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/engine"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// summaryReport is the aggregate view printed by the summary command.
type summaryReport struct {
	Sections      int                 `json:"sections"`
	Groups        int                 `json:"groups"`
	StackedGroups int                 `json:"stackedGroups"`
	Enrollment    schedule.Enrollment `json:"enrollment"`
	FillRate      decimal.Decimal     `json:"fillRate"`
	Conflicts     conflict.Summary    `json:"conflicts"`

	// Instructors counts instructor conflicts per instructor name
	Instructors map[string]int `json:"instructors"`
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print schedule and conflict totals",
	Long:  `Print section, group and enrollment totals plus conflict counts per kind and per instructor.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runAnalysis(cmd)
		if err != nil {
			return err
		}

		report := buildSummary(result)
		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, report)
		}

		PrintSection(out, "Schedule Summary")
		PrintLabelValue(out, "Sections", strconv.Itoa(report.Sections))
		PrintLabelValue(out, "Groups", fmt.Sprintf("%d (%d stacked)", report.Groups, report.StackedGroups))
		PrintLabelValue(out, "Enrollment", fmt.Sprintf("%d/%d (%s%%)",
			report.Enrollment.Current, report.Enrollment.Maximum, report.FillRate.Mul(hundred).StringFixed(1)))

		conflictColor := successColor
		if report.Conflicts.Total > 0 {
			conflictColor = warningColor
		}
		PrintLabelValueWithColor(out, "Conflicts", fmt.Sprintf("%d (%d instructor, %d room)",
			report.Conflicts.Total, report.Conflicts.Instructor, report.Conflicts.Room), conflictColor)

		if len(report.Instructors) > 0 {
			_, _ = fmt.Fprintln(out)
			PrintSubsection(out, "Double-booked instructors")
			PrintList(out, instructorLines(report.Instructors), 2)
		}
		return nil
	},
}

func buildSummary(result *engine.RunResult) summaryReport {
	report := summaryReport{
		Sections:    len(result.Sections),
		Groups:      len(result.Groups),
		Conflicts:   result.Summary,
		Instructors: map[string]int{},
	}

	for _, g := range result.Groups {
		if !g.IsStandalone {
			report.StackedGroups++
		}
		report.Enrollment = report.Enrollment.Add(g.Enrollment)
	}
	report.FillRate = decimal.Zero
	if report.Enrollment.Maximum > 0 {
		report.FillRate = decimal.NewFromInt(int64(report.Enrollment.Current)).
			Div(decimal.NewFromInt(int64(report.Enrollment.Maximum))).
			Round(4)
	}

	index := resultIndex(result)
	for _, r := range result.Conflicts {
		if r.Kind != conflict.KindInstructor {
			continue
		}
		report.Instructors[instructorName(index[r.SectionA].Instructor)]++
	}
	return report
}

// instructorLines renders per-instructor counts, most conflicts first.
func instructorLines(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %s", name, PrintCount(counts[name], "conflict", "conflicts"))
	}
	return lines
}
