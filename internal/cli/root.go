package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput       bool
	configFile       string
	logLevel         string
	dataFile         string
	subjects         []string
	instructorFilter string
	includeAliases   bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for deptsched.
var rootCmd = &cobra.Command{
	Use:     "deptsched",
	Version: "dev",
	Short:   "Department course schedule conflict and layout engine",
	Long: `deptsched analyzes a department's term schedule.

It links stacked sections listed under several catalog numbers, reports
instructor and room double-bookings, and lays each weekday out into
non-overlapping calendar columns.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	// Long description first, when present
	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	fmt.Fprintf(&help, "\n  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		writeCommands(&help, groupTitleColor.Sprint(group.Title), cmd.Commands(), group.ID)
	}
	// Ungrouped commands
	writeCommands(&help, sectionTitleColor.Sprint("Additional Commands:"), cmd.Commands(), "")

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// writeCommands lists the visible commands in groupID under title. Nothing is
// written when the group is empty.
func writeCommands(help *strings.Builder, title string, cmds []*cobra.Command, groupID string) {
	var visible []*cobra.Command
	for _, c := range cmds {
		if c.GroupID == groupID && !c.Hidden {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return
	}

	help.WriteString(title)
	help.WriteString("\n")
	for _, c := range visible {
		fmt.Fprintf(help, "  %-11s %s\n", c.Name(), c.Short)
	}
	help.WriteString("\n")
}

func init() {
	// Set custom help function to color group titles
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.StringVar(&configFile, "config", "", "Config file (default $DEPTSCHED_ROOT/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVarP(&dataFile, "file", "f", "", "Schedule export to analyze (.json, .yaml)")
	flags.StringSliceVar(&subjects, "subject", nil, "Only show sections with this subject (repeatable)")
	flags.StringVar(&instructorFilter, "instructor", "", "Only show sections whose instructor matches")
	flags.BoolVar(&includeAliases, "include-aliases", false, "Show stacked alias sections separately")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "schedule-analysis",
		Title: "Schedule Analysis:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the deptsched CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				return cmd.Root().Help()
			}
			return target.Help()
		},
	}
	// Add help command to CLI & Tooling group
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for deptsched for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	shells := []struct {
		name string
		gen  func(io.Writer) error
	}{
		{"bash", rootCmd.GenBashCompletion},
		{"zsh", rootCmd.GenZshCompletion},
		{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
		{"powershell", rootCmd.GenPowerShellCompletionWithDesc},
	}
	for _, sh := range shells {
		completionCmd.AddCommand(&cobra.Command{
			Use:                   sh.name,
			Short:                 "Generate the autocompletion script for " + sh.name,
			DisableFlagsInUseLine: true,
			Args:                  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return sh.gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)

	// Schedule Analysis commands
	conflictsCmd.GroupID = "schedule-analysis"
	groupsCmd.GroupID = "schedule-analysis"
	layoutCmd.GroupID = "schedule-analysis"
	checkCmd.GroupID = "schedule-analysis"
	summaryCmd.GroupID = "schedule-analysis"
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(summaryCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
