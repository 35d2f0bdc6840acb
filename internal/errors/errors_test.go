package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError(t *testing.T) {
	t.Run("renders all sections", func(t *testing.T) {
		err := &DetailError{
			Type:     "load failed",
			Message:  "invalid YAML in get.yaml: line 3",
			Location: "payloads/users/get.yaml",
			Hint:     "Use .yaml, .yml, or .json",
			Cause:    ErrLoad,
		}

		msg := err.Error()
		assert.Contains(t, msg, "Error: load failed")
		assert.Contains(t, msg, "Location: payloads/users/get.yaml")
		assert.Contains(t, msg, "invalid YAML in get.yaml: line 3")
		assert.Contains(t, msg, "Hint: Use .yaml, .yml, or .json")
	})

	t.Run("omits empty sections", func(t *testing.T) {
		err := &DetailError{Type: "not found", Message: "no such fragment"}

		msg := err.Error()
		assert.NotContains(t, msg, "Location:")
		assert.NotContains(t, msg, "Field:")
		assert.NotContains(t, msg, "Hint:")
	})

	t.Run("unwraps to its sentinel", func(t *testing.T) {
		assert.ErrorIs(t, NewLoadError("boom", "x.yaml", ""), ErrLoad)
		assert.ErrorIs(t, NewNotFoundError("gone", "", ""), ErrNotFound)
		assert.ErrorIs(t, NewValidationError("bad body", "body", ""), ErrValidation)
	})
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrMergeDepth, "merging fragments")

	assert.ErrorIs(t, err, ErrMergeDepth)
	assert.Contains(t, err.Error(), "merging fragments")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrLoad, ErrMergeDepth, ErrValidation,
		ErrNotFound, ErrEmptySelection, ErrDuplicateSelection,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
