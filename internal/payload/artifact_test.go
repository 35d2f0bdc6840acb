package payload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBody(t *testing.T) {
	t.Run("map body becomes compact JSON string", func(t *testing.T) {
		data := map[string]any{
			"rawPath": "/users",
			"body":    map[string]any{"name": "ada"},
		}

		normalized, err := NormalizeBody(data)

		require.NoError(t, err)
		assert.Equal(t, `{"name":"ada"}`, normalized["body"])
		// The input map is untouched.
		assert.Equal(t, map[string]any{"name": "ada"}, data["body"])
	})

	t.Run("list body becomes compact JSON string", func(t *testing.T) {
		data := map[string]any{"body": []any{1, 2, 3}}

		normalized, err := NormalizeBody(data)

		require.NoError(t, err)
		assert.Equal(t, "[1,2,3]", normalized["body"])
	})

	t.Run("string body passes through", func(t *testing.T) {
		data := map[string]any{"body": `{"k":"v"}`}

		normalized, err := NormalizeBody(data)

		require.NoError(t, err)
		assert.Equal(t, `{"k":"v"}`, normalized["body"])
	})

	t.Run("absent body passes through", func(t *testing.T) {
		data := map[string]any{"rawPath": "/"}

		normalized, err := NormalizeBody(data)

		require.NoError(t, err)
		assert.Equal(t, data, normalized)
	})
}

func TestWriteArtifact(t *testing.T) {
	t.Run("writes a timestamped JSON file", func(t *testing.T) {
		dir := t.TempDir()

		path, err := WriteArtifact(dir, map[string]any{"rawPath": "/users"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filepath.Base(path), "lamina-payload-"))
		assert.Equal(t, ".json", filepath.Ext(path))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "/users", decoded["rawPath"])
	})

	t.Run("back-to-back writes never share a path", func(t *testing.T) {
		dir := t.TempDir()

		first, err := WriteArtifact(dir, map[string]any{"n": 1})
		require.NoError(t, err)
		second, err := WriteArtifact(dir, map[string]any{"n": 2})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)

		// Both artifacts survive with their own contents.
		for i, path := range []string{first, second} {
			raw, err := os.ReadFile(path)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(raw, &decoded))
			assert.Equal(t, float64(i+1), decoded["n"])
		}
	})

	t.Run("empty dir defaults to the system temp directory", func(t *testing.T) {
		path, err := WriteArtifact("", map[string]any{"a": 1})

		require.NoError(t, err)
		defer os.Remove(path)
		assert.Equal(t, os.TempDir(), filepath.Dir(path))
	})
}
