package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/engine"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

var layoutDay string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the weekly calendar column layout",
	Long: `Assign every group meeting a column so that overlapping meetings on the
same day sit side by side. Each meeting reports its column and the column
count of its overlap cluster.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := schedule.Weekdays
		if layoutDay != "" {
			day, err := schedule.ParseDay(layoutDay)
			if err != nil {
				return err
			}
			days = []schedule.Day{day}
		}

		result, err := runAnalysis(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			selected := make(map[schedule.Day][]engine.GroupPlacement, len(days))
			for _, d := range days {
				if placements, ok := result.Layout[d]; ok {
					selected[d] = placements
				}
			}
			return outputJSON(out, selected)
		}

		PrintSection(out, "Weekly Layout")
		for _, d := range days {
			placements := result.Layout[d]
			PrintSubsection(out, d.String())
			if len(placements) == 0 {
				PrintEmptyState(out, "No meetings")
				_, _ = fmt.Fprintln(out)
				continue
			}

			rows := make([][]string, 0, len(placements))
			for _, p := range placements {
				label := p.GroupID
				if g, ok := result.Group(p.GroupID); ok {
					label = g.Label()
				}
				rows = append(rows, []string{
					label,
					formatSpan(p.Meeting.Interval),
					fmt.Sprintf("%d/%d", p.Column+1, p.TotalColumns),
					formatLocation(p.Meeting),
				})
			}
			PrintTable(out, []string{"GROUP", "TIME", "COLUMN", "ROOM"}, rows)
			_, _ = fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	layoutCmd.Flags().StringVar(&layoutDay, "day", "", "Only show this weekday (e.g. MON, Tuesday, R)")
}
