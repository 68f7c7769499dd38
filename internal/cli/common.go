package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/config"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/engine"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/ingest"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/logging"
	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

// loadConfig resolves settings from flags, environment and the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	return config.Load(config.Options{
		ConfigFile: configFile,
		Paths:      paths,
		Flags:      cmd.Flags(),
	})
}

// runAnalysis loads the configured schedule file and runs the full pipeline.
func runAnalysis(cmd *cobra.Command) (*engine.RunResult, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.DataFile == "" {
		return nil, ErrNoDataFile
	}

	sections, err := ingest.DecodeFile(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	logger.Debug("loaded schedule", zap.String("file", cfg.DataFile), zap.Int("sections", len(sections)))

	eng := engine.New(logger)
	return eng.Run(cmd.Context(), &engine.RunRequest{
		Sections: sections,
		Filter: engine.Filter{
			Subjects:       cfg.Subjects,
			Instructor:     instructorFilter,
			IncludeAliases: cfg.IncludeAliases,
		},
	})
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatSpan renders an interval's clock range, e.g. "08:00-08:50".
func formatSpan(t schedule.TimeInterval) string {
	return fmt.Sprintf("%s-%s", schedule.FormatClock(t.Start), schedule.FormatClock(t.End))
}

// formatLocation renders a meeting's building and room, or "TBA".
func formatLocation(m schedule.MeetingBlock) string {
	building, room, ok := m.Location()
	if !ok {
		return "TBA"
	}
	return building + " " + room
}

// sectionIndex maps section ids to sections.
func sectionIndex(sections []schedule.Section) map[string]schedule.Section {
	index := make(map[string]schedule.Section, len(sections))
	for _, s := range sections {
		index[s.ID] = s
	}
	return index
}

// resultIndex indexes the display list plus every group member, so hidden
// aliases named by a conflict still resolve to their code.
func resultIndex(result *engine.RunResult) map[string]schedule.Section {
	index := sectionIndex(result.Sections)
	for _, g := range result.Groups {
		for _, m := range g.Members() {
			if _, ok := index[m.ID]; !ok {
				index[m.ID] = m
			}
		}
	}
	return index
}

// sectionCode returns the display code of id, or id itself when unknown.
func sectionCode(index map[string]schedule.Section, id string) string {
	if s, ok := index[id]; ok {
		return s.Code()
	}
	return id
}

func instructorName(inst *schedule.Instructor) string {
	if inst == nil {
		return "Staff"
	}
	if strings.TrimSpace(inst.Name) != "" {
		return inst.Name
	}
	return inst.Key
}
