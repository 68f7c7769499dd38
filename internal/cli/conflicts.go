package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/conflict"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

var conflictSection string

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "List instructor and room double-bookings",
	Long: `Report every pair of sections that share an instructor or a room at
overlapping times. Stacked alias sections are hidden unless --include-aliases
is set, so a stacked class is never reported as conflicting with itself.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runAnalysis(cmd)
		if err != nil {
			return err
		}

		records := result.Conflicts
		if conflictSection != "" {
			records = involving(records, conflictSection)
		}
		summary := conflict.Summarize(records)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, struct {
				Conflicts []conflict.Record `json:"conflicts"`
				Summary   conflict.Summary  `json:"summary"`
			}{records, summary})
		}

		PrintSection(out, "Conflicts")
		if len(records) == 0 {
			PrintSuccess(out, "No conflicts found")
			return nil
		}

		index := resultIndex(result)
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				r.Kind.String(),
				r.Day.Short(),
				formatSpan(r.Overlap()),
				fmt.Sprintf("%s / %s", sectionCode(index, r.SectionA), sectionCode(index, r.SectionB)),
			})
		}
		PrintTable(out, []string{"KIND", "DAY", "OVERLAP", "SECTIONS"}, rows)

		_, _ = fmt.Fprintln(out)
		PrintSubsection(out, "By section")
		PrintList(out, sectionLines(conflict.BySection(records), index), 2)

		_, _ = fmt.Fprintln(out)
		PrintWarning(out, fmt.Sprintf("%s across %s",
			PrintCount(summary.Total, "conflict", "conflicts"),
			PrintCount(summary.Sections, "section", "sections")))
		return nil
	},
}

func init() {
	conflictsCmd.Flags().StringVar(&conflictSection, "section", "", "Only show conflicts involving this section id")
}

func involving(records []conflict.Record, sectionID string) []conflict.Record {
	out := []conflict.Record{}
	for _, r := range records {
		if r.Involves(sectionID) {
			out = append(out, r)
		}
	}
	return out
}

// sectionLines renders per-section conflict counts ordered by section code.
func sectionLines(bySection map[string][]conflict.Record, index map[string]schedule.Section) []string {
	codes := make([]string, 0, len(bySection))
	counts := make(map[string]int, len(bySection))
	for id, records := range bySection {
		code := sectionCode(index, id)
		codes = append(codes, code)
		counts[code] = len(records)
	}
	sort.Strings(codes)

	lines := make([]string, len(codes))
	for i, code := range codes {
		lines[i] = fmt.Sprintf("%s: %s", code, PrintCount(counts[code], "conflict", "conflicts"))
	}
	return lines
}
