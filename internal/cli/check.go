package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Exit non-zero when the schedule has conflicts",
	Long: `Run conflict detection and fail when any instructor or room conflict
exists. Intended as a gate in scripts and CI pipelines.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runAnalysis(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			if err := outputJSON(out, result.Summary); err != nil {
				return err
			}
		} else if result.Summary.Total == 0 {
			PrintSuccess(out, fmt.Sprintf("No conflicts across %s", PrintCount(len(result.Sections), "section", "sections")))
		} else {
			PrintError(out, fmt.Sprintf("%s (%d instructor, %d room)",
				PrintCount(result.Summary.Total, "conflict", "conflicts"),
				result.Summary.Instructor, result.Summary.Room))
		}

		if result.Summary.Total > 0 {
			return fmt.Errorf("%w: %d", ErrConflictsFound, result.Summary.Total)
		}
		return nil
	},
}
