package payload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

func writeFragment(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("loads YAML fragment", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "frag.yaml", "version: \"2.0\"\nheaders:\n  accept: application/json\n")

		data, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "2.0", data["version"])
		assert.Equal(t, map[string]any{"accept": "application/json"}, data["headers"])
	})

	t.Run("loads JSON fragment", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "frag.json", `{"routeKey": "GET /users", "rawPath": "/users"}`)

		data, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "GET /users", data["routeKey"])
		assert.Equal(t, "/users", data["rawPath"])
	})

	t.Run("yml extension is YAML", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "frag.yml", "a: 1\n")

		data, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, 1, data["a"])
	})

	t.Run("empty YAML file decodes to empty map", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "empty.yaml", "")

		data, err := LoadFile(path)

		require.NoError(t, err)
		assert.Empty(t, data)
		assert.NotNil(t, data)
	})

	t.Run("empty JSON file decodes to empty map", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "empty.json", "  \n")

		data, err := LoadFile(path)

		require.NoError(t, err)
		assert.Empty(t, data)
		assert.NotNil(t, data)
	})

	t.Run("unsupported extension fails", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "frag.toml", "a = 1\n")

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
		assert.Contains(t, err.Error(), "unsupported file format")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("non-map YAML top level fails", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "list.yaml", "- a\n- b\n")

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
		assert.Contains(t, err.Error(), "must be a map at the top level")
	})

	t.Run("non-map JSON top level fails", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "list.json", `[1, 2, 3]`)

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
	})

	t.Run("malformed JSON reports line and column", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "bad.json", "{\n  \"a\": 1,\n}\n")

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("malformed YAML fails with detail", func(t *testing.T) {
		path := writeFragment(t, t.TempDir(), "bad.yaml", "a: [1, 2\n")

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
		assert.Contains(t, err.Error(), "invalid YAML")
	})
}

func TestOffsetToLineColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")

	tests := []struct {
		offset   int64
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{7, 3, 2},
	}

	for _, tt := range tests {
		line, col := offsetToLineColumn(data, tt.offset)
		assert.Equal(t, tt.wantLine, line)
		assert.Equal(t, tt.wantCol, col)
	}
}
