// Package selection maintains a user-curated ordered list of fragments and
// turns it into a composed, validated artifact.
package selection

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	lerrors "github.com/laminakit/lamina/internal/errors"
	"github.com/laminakit/lamina/internal/output"
	"github.com/laminakit/lamina/internal/payload"
)

// Entry is one selected fragment. Order is assigned at insertion time and is
// display metadata only; position in the session list is authoritative.
type Entry struct {
	// Path is the resolved fragment path.
	Path string

	// Label is the fragment path relative to the fragments root.
	Label string

	// Order is the insertion sequence number, starting at 1.
	Order int
}

// Manager owns one selection session. It is not safe for concurrent use;
// exactly one caller drives a session from first Add to Finalize or
// abandonment.
type Manager struct {
	composer    *payload.Composer
	environment string
	artifactDir string
	session     string
	nextOrder   int
	entries     []Entry
}

// NewManager creates a selection session over the given composer.
// Artifacts produced by Finalize are written under artifactDir.
func NewManager(composer *payload.Composer, environment, artifactDir string) *Manager {
	m := &Manager{
		composer:    composer,
		environment: environment,
		artifactDir: artifactDir,
		session:     uuid.NewString(),
		nextOrder:   1,
	}
	output.Debug("selection session started",
		"session", m.session,
		"environment", environment,
	)
	return m
}

// Session returns the session identifier.
func (m *Manager) Session() string {
	return m.session
}

// Add appends a fragment to the selection. Adding a path that is already
// selected leaves the session unchanged and returns ErrDuplicateSelection.
func (m *Manager) Add(path string) (Entry, error) {
	resolved := filepath.Clean(path)
	for _, e := range m.entries {
		if e.Path == resolved {
			return Entry{}, fmt.Errorf("%w: %s", lerrors.ErrDuplicateSelection, e.Label)
		}
	}

	entry := Entry{
		Path:  resolved,
		Label: m.displayLabel(resolved),
		Order: m.nextOrder,
	}
	m.nextOrder++
	m.entries = append(m.entries, entry)

	output.Debug("fragment selected", "session", m.session, "fragment", entry.Label)
	return entry, nil
}

// RemoveAt removes the entry at the given position. Remaining entries keep
// their original Order values.
func (m *Manager) RemoveAt(index int) (Entry, error) {
	if index < 0 || index >= len(m.entries) {
		return Entry{}, fmt.Errorf("selection index %d out of range", index)
	}

	removed := m.entries[index]
	m.entries = append(m.entries[:index], m.entries[index+1:]...)
	return removed, nil
}

// Clear empties the selection.
func (m *Manager) Clear() {
	m.entries = nil
}

// Len returns the number of selected fragments.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the current selection in merge order.
func (m *Manager) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Preview composes and validates the current selection without persisting
// anything. An empty selection composes to an empty document.
func (m *Manager) Preview() (*payload.Document, payload.ValidationResult, error) {
	doc, err := m.composer.ComposeSequence(m.paths())
	if err != nil {
		return nil, payload.ValidationResult{}, err
	}
	return doc, payload.Validate(doc.Data), nil
}

// Finalize composes the selection, validates it, and writes the artifact.
// It fails closed: no artifact is produced on an empty selection or when
// validation reports any error.
func (m *Manager) Finalize() (string, error) {
	if len(m.entries) == 0 {
		return "", fmt.Errorf("%w: add at least one fragment first", lerrors.ErrEmptySelection)
	}

	doc, err := m.composer.ComposeSequence(m.paths())
	if err != nil {
		return "", err
	}

	result := payload.Validate(doc.Data)
	if !result.Valid {
		return "", fmt.Errorf("%w: %s", lerrors.ErrValidation,
			strings.Join(result.Errors, "; "))
	}

	normalized, err := payload.NormalizeBody(doc.Data)
	if err != nil {
		return "", err
	}

	path, err := payload.WriteArtifact(m.artifactDir, normalized)
	if err != nil {
		return "", err
	}

	output.Debug("artifact written",
		"session", m.session,
		"fragments", len(m.entries),
		"artifact", path,
	)
	return path, nil
}

func (m *Manager) paths() []string {
	paths := make([]string, len(m.entries))
	for i, e := range m.entries {
		paths[i] = e.Path
	}
	return paths
}

// displayLabel renders a path relative to the fragments root when possible.
func (m *Manager) displayLabel(path string) string {
	rel, err := filepath.Rel(m.composer.Root(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
