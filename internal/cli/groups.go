package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/groups"
)

var hundred = decimal.NewFromInt(100)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List course groups with combined enrollment",
	Long: `List one entry per physical offering. Stacked sections are merged under
a combined display code (e.g. CYBR 477/577) with summed enrollment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runAnalysis(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result.Groups)
		}

		PrintSection(out, "Course Groups")
		if len(result.Groups) == 0 {
			PrintEmptyState(out, "No sections match the current filters")
			return nil
		}

		rows := make([][]string, 0, len(result.Groups))
		for _, g := range result.Groups {
			rows = append(rows, []string{
				g.Label(),
				g.Title,
				groupSections(g),
				fmt.Sprintf("%d/%d", g.Enrollment.Current, g.Enrollment.Maximum),
				g.FillRate().Mul(hundred).StringFixed(1) + "%",
				groupMeetings(g),
				groupFlags(g),
			})
		}
		PrintTable(out, []string{"CODE", "TITLE", "SECTIONS", "ENROLLED", "FILL", "MEETINGS", "FLAGS"}, rows)
		return nil
	},
}

// groupMeetings renders a group's meetings compactly, e.g. "MON 08:00-08:50, WED 08:00-08:50".
func groupMeetings(g groups.CourseGroup) string {
	if len(g.Meetings) == 0 {
		return g.Canonical.Mode.String()
	}
	parts := make([]string, 0, len(g.Meetings))
	for _, m := range g.Meetings {
		parts = append(parts, m.Interval.Day.Short()+" "+formatSpan(m.Interval))
	}
	return strings.Join(parts, ", ")
}

// groupSections lists the member section codes, canonical first.
func groupSections(g groups.CourseGroup) string {
	members := g.Members()
	codes := make([]string, len(members))
	for i, s := range members {
		codes[i] = s.Code()
	}
	return strings.Join(codes, " ")
}

func groupFlags(g groups.CourseGroup) string {
	var flags []string
	if !g.IsStandalone {
		flags = append(flags, "stacked")
	}
	if g.HasConflict {
		flags = append(flags, "conflict")
	}
	return strings.Join(flags, ",")
}
