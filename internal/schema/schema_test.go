package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

const payloadSchema = `
version:  "2.0"
routeKey: string
rawPath:  string
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.cue")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSchema(t *testing.T) {
	t.Run("compiles a valid schema", func(t *testing.T) {
		checker, err := LoadSchema(writeSchema(t, payloadSchema))

		require.NoError(t, err)
		assert.NotNil(t, checker)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadSchema(filepath.Join(t.TempDir(), "nope.cue"))

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
	})

	t.Run("malformed schema fails", func(t *testing.T) {
		_, err := LoadSchema(writeSchema(t, "version: {{{"))

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrLoad)
	})
}

func TestCheckerCheck(t *testing.T) {
	checker, err := LoadSchema(writeSchema(t, payloadSchema))
	require.NoError(t, err)

	t.Run("conforming document passes", func(t *testing.T) {
		err := checker.Check(map[string]any{
			"version":  "2.0",
			"routeKey": "GET /users",
			"rawPath":  "/users",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong field type fails", func(t *testing.T) {
		err := checker.Check(map[string]any{
			"version":  "2.0",
			"routeKey": 42,
			"rawPath":  "/users",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrValidation)
	})

	t.Run("wrong version value fails", func(t *testing.T) {
		err := checker.Check(map[string]any{
			"version":  "1.0",
			"routeKey": "GET /users",
			"rawPath":  "/users",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrValidation)
	})

	t.Run("missing required field fails concreteness", func(t *testing.T) {
		err := checker.Check(map[string]any{
			"version": "2.0",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrValidation)
	})
}
