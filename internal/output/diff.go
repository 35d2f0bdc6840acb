package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	sigsyaml "sigs.k8s.io/yaml"
)

// DiffDocuments computes a YAML-aware diff between two composed documents.
// Returns an empty string when the documents are identical.
func DiffDocuments(fromName string, from map[string]any, toName string, to map[string]any, useColor bool) (string, error) {
	fromYAML, err := sigsyaml.Marshal(from)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", fromName, err)
	}

	toYAML, err := sigsyaml.Marshal(to)
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", toName, err)
	}

	fromInput, err := parseYAMLInput(fromName, fromYAML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", fromName, err)
	}

	toInput, err := parseYAMLInput(toName, toYAML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", toName, err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	// Clean up output - remove trailing whitespace from lines
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
