package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jdoner02/cyber-department-schedule-sub001/internal/schedule"
)

var (
	// ErrInvalidRecord indicates a raw section that cannot be normalized.
	ErrInvalidRecord = errors.New("invalid schedule record")

	// ErrUnknownFormat indicates an unsupported export format.
	ErrUnknownFormat = errors.New("unknown schedule format")
)

// Format is a raw export encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// DecodeFile reads and normalizes the export at path.
func DecodeFile(path string) ([]schedule.Section, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(f, format)
}

// Decode reads a raw export in the given format and normalizes it.
// UTF-8 input with or without a byte order mark and UTF-16 input with a
// byte order mark are both accepted.
func Decode(r io.Reader, format Format) ([]schedule.Section, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(decoded)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON schedule: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(decoded).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML schedule: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return Normalize(doc)
}
