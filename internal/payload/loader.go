package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

// LoadFile loads a fragment file into a string-keyed map. The surface syntax
// is selected by extension: .yaml/.yml or .json. The top-level value must be
// a map; an empty file decodes to an empty map.
func LoadFile(path string) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, lerrors.NewLoadError(
			fmt.Sprintf("unsupported file format %q", filepath.Ext(path)),
			path,
			"Use .yaml, .yml, or .json",
		)
	}
}

// loadYAML decodes a YAML fragment with detailed error reporting.
func loadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lerrors.NewLoadError("fragment file not found", path, "")
		}
		return nil, lerrors.NewLoadError(fmt.Sprintf("reading fragment: %v", err), path, "")
	}

	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		// yaml.v3 error strings already carry "line N" detail.
		return nil, lerrors.NewLoadError(
			fmt.Sprintf("invalid YAML in %s: %v", filepath.Base(path), err),
			path,
			"",
		)
	}

	return mapFromParsed(parsed, path)
}

// loadJSON decodes a JSON fragment, converting syntax-error offsets to
// line and column.
func loadJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lerrors.NewLoadError("fragment file not found", path, "")
		}
		return nil, lerrors.NewLoadError(fmt.Sprintf("reading fragment: %v", err), path, "")
	}

	// Empty file decodes to an empty map, matching the YAML path.
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]any{}, nil
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		var synErr *json.SyntaxError
		if errors.As(err, &synErr) {
			line, col := offsetToLineColumn(data, synErr.Offset)
			return nil, lerrors.NewLoadError(
				fmt.Sprintf("invalid JSON in %s at line %d, column %d: %v",
					filepath.Base(path), line, col, synErr),
				path,
				"",
			)
		}
		return nil, lerrors.NewLoadError(
			fmt.Sprintf("invalid JSON in %s: %v", filepath.Base(path), err),
			path,
			"",
		)
	}

	return mapFromParsed(parsed, path)
}

// mapFromParsed enforces the map-at-top-level contract shared by both
// surface syntaxes.
func mapFromParsed(parsed any, path string) (map[string]any, error) {
	if parsed == nil {
		return map[string]any{}, nil
	}

	m, ok := parsed.(map[string]any)
	if !ok {
		return nil, lerrors.NewLoadError(
			fmt.Sprintf("fragment must be a map at the top level, got %T", parsed),
			path,
			"",
		)
	}

	return m, nil
}

// offsetToLineColumn converts a byte offset into 1-based line and column.
func offsetToLineColumn(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
