package payload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Reserved layer locations inside the fragment root.
const (
	// baseDirName holds the shared general base and per-environment
	// context layers.
	baseDirName = "_base"

	// generalFileName is the shared lowest-precedence layer.
	generalFileName = "general.yaml"

	// metadataFileName is the per-target metadata layer.
	metadataFileName = "_metadata.yaml"

	// contextPrefix names per-environment context layers (context-dev.yaml).
	contextPrefix = "context-"

	// reservedPrefix marks files and directories excluded from selection.
	reservedPrefix = "_"
)

// Document is the result of composing one or more layers.
type Document struct {
	// Data is the final merged map.
	Data map[string]any

	// Sources records every layer actually merged, in merge order.
	Sources []string

	// Warnings records optional layers that were missing or substituted.
	Warnings []string
}

// Composer folds fragment layers into a single document following a fixed
// precedence order. It holds no mutable state; one instance may serve many
// compose calls.
type Composer struct {
	root    string
	baseDir string
}

// NewComposer creates a Composer rooted at the given fragments directory.
func NewComposer(root string) *Composer {
	return &Composer{
		root:    root,
		baseDir: filepath.Join(root, baseDirName),
	}
}

// Root returns the fragments root directory.
func (c *Composer) Root() string {
	return c.root
}

// Compose merges the layer stack for the selected fragment, lowest to
// highest precedence:
//
//  1. _base/general.yaml              optional
//  2. _base/context-<environment>.yaml optional, with fallback
//  3. <target dir>/_metadata.yaml      optional
//  4. the selected fragment            required
//
// Optional layers that are missing or fail to load become warnings; a
// failure on the selected fragment aborts the whole call.
func (c *Composer) Compose(selected, environment string) (*Document, error) {
	doc := &Document{
		Data:     map[string]any{},
		Sources:  []string{},
		Warnings: []string{},
	}

	if err := c.mergeGeneral(doc); err != nil {
		return nil, err
	}
	if err := c.mergeContext(doc, environment); err != nil {
		return nil, err
	}
	if err := c.mergeMetadata(doc, selected); err != nil {
		return nil, err
	}

	// The explicitly selected fragment is required.
	data, err := LoadFile(selected)
	if err != nil {
		return nil, fmt.Errorf("loading selected fragment: %w", err)
	}
	if err := doc.fold(selected, data); err != nil {
		return nil, err
	}

	return doc, nil
}

// ComposeSequence folds an explicit ordered list of fragments left to right,
// later entries overriding earlier ones. No implicit base, context, or
// metadata layers are injected, and any load failure is fatal.
func (c *Composer) ComposeSequence(paths []string) (*Document, error) {
	doc := &Document{
		Data:     map[string]any{},
		Sources:  []string{},
		Warnings: []string{},
	}

	for _, path := range paths {
		data, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading fragment: %w", err)
		}
		if err := doc.fold(path, data); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// mergeGeneral folds the shared general base layer, if present.
func (c *Composer) mergeGeneral(doc *Document) error {
	path := filepath.Join(c.baseDir, generalFileName)
	if _, err := os.Stat(path); err != nil {
		doc.warnf("optional base file not found: %s", generalFileName)
		return nil
	}

	data, err := LoadFile(path)
	if err != nil {
		doc.warnf("failed to load %s: %v", generalFileName, err)
		return nil
	}
	return doc.fold(path, data)
}

// mergeContext folds the per-environment context layer, falling back to
// another environment's context when the requested one is absent.
func (c *Composer) mergeContext(doc *Document, environment string) error {
	path := filepath.Join(c.baseDir, contextPrefix+environment+".yaml")
	if _, err := os.Stat(path); err == nil {
		data, loadErr := LoadFile(path)
		if loadErr != nil {
			doc.warnf("failed to load %s: %v", filepath.Base(path), loadErr)
			return nil
		}
		return doc.fold(path, data)
	}

	candidates, _ := filepath.Glob(filepath.Join(c.baseDir, contextPrefix+"*.yaml"))
	if len(candidates) == 0 {
		doc.warnf("no context files found in %s/", baseDirName)
		return nil
	}

	// Sorted so repeated composes pick the same fallback.
	sort.Strings(candidates)
	fallback := candidates[0]
	doc.warnf("context for environment %q not found, using fallback: %s",
		environment, filepath.Base(fallback))

	data, err := LoadFile(fallback)
	if err != nil {
		doc.warnf("failed to load %s: %v", filepath.Base(fallback), err)
		return nil
	}
	return doc.fold(fallback, data)
}

// mergeMetadata folds the per-target metadata layer when the selected
// fragment sits in a non-reserved subdirectory of the fragment root.
func (c *Composer) mergeMetadata(doc *Document, selected string) error {
	dir := filepath.Dir(selected)
	if filepath.Clean(dir) == filepath.Clean(c.root) {
		return nil
	}
	if strings.HasPrefix(filepath.Base(dir), reservedPrefix) {
		return nil
	}

	path := filepath.Join(dir, metadataFileName)
	if _, err := os.Stat(path); err != nil {
		doc.warnf("optional metadata file not found: %s/%s",
			filepath.Base(dir), metadataFileName)
		return nil
	}

	data, err := LoadFile(path)
	if err != nil {
		doc.warnf("failed to load %s: %v", metadataFileName, err)
		return nil
	}
	return doc.fold(path, data)
}

// fold merges one layer into the running document and records its source.
func (d *Document) fold(path string, data map[string]any) error {
	merged, err := Merge(d.Data, data)
	if err != nil {
		return err
	}
	d.Data = merged
	d.Sources = append(d.Sources, path)
	return nil
}

func (d *Document) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}
