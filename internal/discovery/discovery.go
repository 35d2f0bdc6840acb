// Package discovery lists selectable payload fragments: the structured
// fragment tree plus flat legacy fixture directories.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind classifies a discovery entry.
type Kind int

const (
	// KindFolder is a navigable directory inside the fragment tree.
	KindFolder Kind = iota

	// KindFile is a selectable composable fragment.
	KindFile

	// KindLegacy is a flat fixture file outside the fragment tree.
	KindLegacy

	// KindBack is the parent-directory pseudo-entry for navigation UIs.
	KindBack
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	case KindLegacy:
		return "legacy"
	case KindBack:
		return "back"
	default:
		return "unknown"
	}
}

// Labels attached to legacy entries.
const (
	LabelShared = "SHARED"
	LabelLocal  = "LOCAL"
)

// reservedPrefix marks reserved layers excluded from listings.
const reservedPrefix = "_"

// fragmentExtensions are the recognized composable fragment suffixes.
var fragmentExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Entry is one presentation-ready listing item. It carries no behavior.
type Entry struct {
	// Path is the entry's filesystem path.
	Path string

	// DisplayName is the presentation name (directories end in "/").
	DisplayName string

	// Kind classifies the entry.
	Kind Kind

	// Label is SHARED or LOCAL for legacy entries, empty otherwise.
	Label string
}

// Lister enumerates fragments. It is stateless; every call reflects the
// current filesystem.
type Lister struct {
	// root is the structured fragment tree.
	root string

	// sharedDir is the flat legacy fixture directory shared by all targets.
	sharedDir string

	// functionsDir holds per-target directories with a payloads/ subdir.
	functionsDir string
}

// NewLister creates a Lister over the given fragment locations.
func NewLister(root, sharedDir, functionsDir string) *Lister {
	return &Lister{
		root:         root,
		sharedDir:    sharedDir,
		functionsDir: functionsDir,
	}
}

// List returns the fragment-root listing followed by legacy entries for the
// given target.
func (l *Lister) List(targetHint string) []Entry {
	entries := l.ListDir(l.root)
	entries = append(entries, l.listLegacy(targetHint)...)
	return entries
}

// ListDir lists one directory of the fragment tree: folders first, then
// fragment files, each group alphabetical. Reserved-prefix names are
// excluded.
func (l *Lister) ListDir(dir string) []Entry {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var folders, files []Entry
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, reservedPrefix) {
			continue
		}

		path := filepath.Join(dir, name)
		if item.IsDir() {
			folders = append(folders, Entry{
				Path:        path,
				DisplayName: name + "/",
				Kind:        KindFolder,
			})
			continue
		}
		if fragmentExtensions[strings.ToLower(filepath.Ext(name))] {
			files = append(files, Entry{
				Path:        path,
				DisplayName: name,
				Kind:        KindFile,
			})
		}
	}

	sortByName(folders)
	sortByName(files)
	return append(folders, files...)
}

// Walk returns the root-relative paths of every selectable fragment in the
// tree, skipping reserved-prefix files and directories.
func (l *Lister) Walk() []string {
	var paths []string
	_ = filepath.WalkDir(l.root, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == l.root {
			return nil
		}
		if strings.HasPrefix(d.Name(), reservedPrefix) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !fragmentExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		if rel, relErr := filepath.Rel(l.root, path); relErr == nil {
			paths = append(paths, rel)
		}
		return nil
	})

	sort.Strings(paths)
	return paths
}

// listLegacy returns the flat fixture entries: shared first, then the
// target's local payloads, each alphabetical.
func (l *Lister) listLegacy(targetHint string) []Entry {
	entries := legacyDir(l.sharedDir, LabelShared)

	if targetHint != "" && l.functionsDir != "" {
		localDir := filepath.Join(l.functionsDir, targetHint, "payloads")
		entries = append(entries, legacyDir(localDir, LabelLocal)...)
	}

	return entries
}

func legacyDir(dir, label string) []Entry {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(matches) == 0 {
		return nil
	}

	sort.Strings(matches)
	entries := make([]Entry, 0, len(matches))
	for _, path := range matches {
		entries = append(entries, Entry{
			Path:        path,
			DisplayName: filepath.Base(path),
			Kind:        KindLegacy,
			Label:       label,
		})
	}
	return entries
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DisplayName < entries[j].DisplayName
	})
}
