package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const termFixture = `{
  "sections": [
    {"id": "40001", "subject": "CSCD", "courseNumber": "440", "sequenceNumber": "001", "title": "Network Security",
     "enrollment": 28, "maximumEnrollment": 30,
     "faculty": [{"displayName": "Ada Smith", "emailAddress": "asmith@example.edu", "primary": true}],
     "meetings": [{"beginTime": "0800", "endTime": "0850", "monday": true, "wednesday": true, "friday": true, "building": "CEB", "room": "101"}]},
    {"id": "40002", "subject": "CSCD", "courseNumber": "330", "sequenceNumber": "001", "title": "Operating Systems",
     "enrollment": 35, "maximumEnrollment": 40,
     "faculty": [{"displayName": "Ada Smith", "emailAddress": "ASmith@example.edu"}],
     "meetings": [{"beginTime": "0830", "endTime": "0920", "monday": true, "building": "CEB", "room": "205"}]},
    {"id": "40003", "subject": "CYBR", "courseNumber": "477", "sequenceNumber": "001", "title": "Digital Forensics",
     "enrollment": 12, "maximumEnrollment": 20,
     "faculty": [{"displayName": "Ben Jones", "emailAddress": "bjones@example.edu"}],
     "meetings": [{"beginTime": "1330", "endTime": "1445", "tuesday": true, "thursday": true, "building": "CEB", "room": "101"}]},
    {"id": "40004", "subject": "CYBR", "courseNumber": "577", "sequenceNumber": "001", "title": "Digital Forensics",
     "enrollment": 6, "maximumEnrollment": 10,
     "faculty": [{"displayName": "Ben Jones", "emailAddress": "bjones@example.edu"}],
     "meetings": [{"beginTime": "1330", "endTime": "1445", "tuesday": true, "thursday": true, "building": "CEB", "room": "101"}]},
    {"id": "40005", "subject": "CYBR", "courseNumber": "101", "sequenceNumber": "040", "title": "Intro to Cybersecurity",
     "enrollment": 50, "maximumEnrollment": 60, "instructionalMethod": "Online",
     "faculty": [{"displayName": "Cy Lee", "emailAddress": "clee@example.edu"}]}
  ]
}`

// setupTestEnv isolates the config root and environment, and writes the
// term fixture. It returns the fixture path.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("DEPTSCHED_ROOT", filepath.Join(root, ".deptsched"))
	for _, key := range []string{"ENV", "LOG_LEVEL", "DATA_FILE", "INCLUDE_ALIASES", "SUBJECTS"} {
		t.Setenv("DEPTSCHED_"+key, "")
	}

	path := filepath.Join(root, "term.json")
	if err := os.WriteFile(path, []byte(termFixture), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace([]string{})
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return bufOut.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	output, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"deptsched", "Schedule Analysis:", "CLI & Tooling:", "conflicts", "completion", "--include-aliases", "for more information"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { rootCmd.Version = "dev" })

	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("expected version output 1.2.3, got %q", output)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	if _, err := executeCommand(t, "invalid-command"); err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	t.Cleanup(func() { rootCmd.Version = "dev" })

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"normal version", "1.2.3", "1.2.3"},
		{"empty version keeps previous", "", "1.2.3"},
		{"dev version", "dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if rootCmd.Version != tt.want {
				t.Errorf("SetVersion(%q) = %q, want %q", tt.version, rootCmd.Version, tt.want)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	subcommands := []string{"conflicts", "groups", "layout", "check", "summary", "version", "completion"}

	for _, name := range subcommands {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := rootCmd.Find([]string{name})
			if err != nil {
				t.Errorf("Find(%q) error = %v", name, err)
			}
			if subCmd == nil || subCmd.Name() != name {
				t.Errorf("Find(%q) returned %v", name, subCmd)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			output, err := executeCommand(t, "completion", shell)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(output, "deptsched") {
				t.Errorf("expected %s completion script to mention deptsched", shell)
			}
		})
	}
}
