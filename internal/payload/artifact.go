package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// artifactPrefix names the transient files handed to the invocation tool.
const artifactPrefix = "lamina-payload"

// NormalizeBody returns a shallow copy of data in which a map- or
// sequence-typed body field is replaced by its compact JSON string form.
// The invocation tool consuming the artifact requires a string body; the
// input map is left untouched.
func NormalizeBody(data map[string]any) (map[string]any, error) {
	body, ok := data[bodyField]
	if !ok {
		return data, nil
	}

	switch body.(type) {
	case map[string]any, []any:
	default:
		return data, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding body: %w", err)
	}

	normalized := make(map[string]any, len(data))
	for k, v := range data {
		normalized[k] = v
	}
	normalized[bodyField] = string(encoded)
	return normalized, nil
}

// WriteArtifact serializes a composed document to a uniquely named JSON
// file under dir and returns its path. Names derive from a millisecond
// timestamp; the file is created exclusively and the stamp bumped on
// collision, so repeated calls never overwrite each other.
func WriteArtifact(dir string, data map[string]any) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding artifact: %w", err)
	}
	encoded = append(encoded, '\n')

	stamp := time.Now().UnixMilli()
	for {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.json", artifactPrefix, stamp))

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			stamp++
			continue
		}
		if err != nil {
			return "", fmt.Errorf("writing artifact: %w", err)
		}

		if _, err := f.Write(encoded); err != nil {
			f.Close()
			return "", fmt.Errorf("writing artifact: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("writing artifact: %w", err)
		}
		return path, nil
	}
}
