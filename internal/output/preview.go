package output

import (
	"encoding/json"
	"fmt"
	"strings"

	sigsyaml "sigs.k8s.io/yaml"
)

// Format specifies the document output format.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a string into a Format.
// Returns FormatJSON if the string is empty or invalid.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// MarshalDocument renders a composed document in the given format.
func MarshalDocument(data map[string]any, format Format) (string, error) {
	switch format {
	case FormatYAML:
		out, err := sigsyaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("encoding document as YAML: %w", err)
		}
		return string(out), nil
	default:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding document as JSON: %w", err)
		}
		return string(out) + "\n", nil
	}
}

// PreviewOptions controls composed-document preview rendering.
type PreviewOptions struct {
	// ShowSources lists the layers merged into the document.
	ShowSources bool

	// Format selects the document serialization.
	Format Format
}

// RenderPreview renders a composed document with its merge sources and
// warnings for terminal display.
func RenderPreview(data map[string]any, sources, warnings []string, opts PreviewOptions) (string, error) {
	var b strings.Builder

	if opts.ShowSources && len(sources) > 0 {
		b.WriteString(StyleBold.Render("Merged from:"))
		b.WriteString("\n")
		for i, source := range sources {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, StyleNoun.Render(source)))
		}
	}

	if len(warnings) > 0 {
		b.WriteString(StyleWarning.Render("Warnings:"))
		b.WriteString("\n")
		for _, warning := range warnings {
			b.WriteString("  - " + StyleWarning.Render(warning) + "\n")
		}
	}

	if b.Len() > 0 {
		b.WriteString(Separator(60))
		b.WriteString("\n")
	}

	doc, err := MarshalDocument(data, opts.Format)
	if err != nil {
		return "", err
	}
	b.WriteString(doc)

	return b.String(), nil
}

// RenderValidation renders a validation result: errors in red, warnings in
// yellow, or a green checkmark when clean.
func RenderValidation(errors, warnings []string) string {
	var b strings.Builder

	if len(errors) > 0 {
		b.WriteString(StyleError.Render("Validation errors:"))
		b.WriteString("\n")
		for _, e := range errors {
			b.WriteString("  - " + StyleError.Render(e) + "\n")
		}
	}

	if len(warnings) > 0 {
		b.WriteString(StyleWarning.Render("Validation warnings:"))
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString("  - " + StyleWarning.Render(w) + "\n")
		}
	}

	if b.Len() == 0 {
		return FormatCheckmark("payload is valid") + "\n"
	}

	return b.String()
}
