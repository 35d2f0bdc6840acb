package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

func TestMerge(t *testing.T) {
	t.Run("empty override returns base unchanged", func(t *testing.T) {
		base := map[string]any{"a": 1, "b": map[string]any{"c": 2}}

		result, err := Merge(base, map[string]any{})

		require.NoError(t, err)
		assert.Equal(t, base, result)
	})

	t.Run("empty base returns override unchanged", func(t *testing.T) {
		override := map[string]any{"a": 1, "b": []any{1, 2}}

		result, err := Merge(map[string]any{}, override)

		require.NoError(t, err)
		assert.Equal(t, override, result)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		base := map[string]any{"a": 1, "b": 2}
		override := map[string]any{"b": 3, "c": nil}

		_, err := Merge(base, override)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, base)
		assert.Equal(t, map[string]any{"b": 3, "c": nil}, override)
	})

	t.Run("maps merge recursively", func(t *testing.T) {
		base := map[string]any{
			"server": map[string]any{"host": "localhost", "port": 8080},
		}
		override := map[string]any{
			"server": map[string]any{"port": 9090},
		}

		result, err := Merge(base, override)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"server": map[string]any{"host": "localhost", "port": 9090},
		}, result)
	})

	t.Run("null override deletes nested key", func(t *testing.T) {
		base := map[string]any{
			"a": map[string]any{"x": 1, "y": 2},
		}
		override := map[string]any{
			"a": map[string]any{"y": nil, "z": 3},
		}

		result, err := Merge(base, override)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"a": map[string]any{"x": 1, "z": 3},
		}, result)
	})

	t.Run("null never introduces a key", func(t *testing.T) {
		result, err := Merge(map[string]any{"a": 1}, map[string]any{"b": nil})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1}, result)
	})

	t.Run("sequences replace wholesale", func(t *testing.T) {
		base := map[string]any{"items": []any{1, 2, 3}}
		override := map[string]any{"items": []any{9}}

		result, err := Merge(base, override)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"items": []any{9}}, result)
	})

	t.Run("scalar replaces map", func(t *testing.T) {
		base := map[string]any{"a": map[string]any{"x": 1}}
		override := map[string]any{"a": "flat"}

		result, err := Merge(base, override)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "flat"}, result)
	})

	t.Run("map replaces nil base value", func(t *testing.T) {
		base := map[string]any{"a": nil}
		override := map[string]any{"a": map[string]any{"x": 1}}

		result, err := Merge(base, override)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": map[string]any{"x": 1}}, result)
	})

	t.Run("keys only in base carry through", func(t *testing.T) {
		result, err := Merge(map[string]any{"a": 1}, map[string]any{"b": 2})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, result)
	})
}

func TestMergeDepthLimit(t *testing.T) {
	// nested builds two aligned maps with the given number of map levels
	// below the root, forcing a recursive merge at every level.
	nested := func(levels int) (map[string]any, map[string]any) {
		base := map[string]any{"leaf": 1}
		override := map[string]any{"leaf": 2}
		for i := 0; i < levels; i++ {
			base = map[string]any{"level": base}
			override = map[string]any{"level": override}
		}
		return base, override
	}

	t.Run("ten levels below the root merge cleanly", func(t *testing.T) {
		base, override := nested(MaxMergeDepth)

		result, err := Merge(base, override)

		require.NoError(t, err)
		current := result
		for i := 0; i < MaxMergeDepth; i++ {
			next, ok := current["level"].(map[string]any)
			require.True(t, ok)
			current = next
		}
		assert.Equal(t, 2, current["leaf"])
	})

	t.Run("eleven levels below the root exceed the limit", func(t *testing.T) {
		base, override := nested(MaxMergeDepth + 1)

		_, err := Merge(base, override)

		require.Error(t, err)
		assert.ErrorIs(t, err, lerrors.ErrMergeDepth)
	})
}
