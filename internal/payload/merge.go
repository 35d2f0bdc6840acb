// Package payload implements layered payload composition: deep merging of
// fragment maps, fragment loading, precedence-ordered composition, and
// validation of the resulting document.
package payload

import (
	"fmt"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

// MaxMergeDepth is the maximum number of map levels below the root a merge
// will recurse into. Exceeding it signals a malformed or pathologically
// nested structure and fails the merge.
const MaxMergeDepth = 10

// Merge deep-merges override into base and returns a new map. Neither input
// is mutated.
//
// Rules:
//   - both values are maps: merge recursively
//   - override value is nil: delete the key (or skip it when absent in base)
//   - anything else, sequences included: override replaces wholesale
//   - keys only in base carry through unchanged
func Merge(base, override map[string]any) (map[string]any, error) {
	return merge(base, override, 0)
}

func merge(base, override map[string]any, depth int) (map[string]any, error) {
	if depth > MaxMergeDepth {
		return nil, fmt.Errorf(
			"%w (%d): possible circular reference or overly nested structure",
			lerrors.ErrMergeDepth, MaxMergeDepth,
		)
	}

	result := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		result[k] = v
	}

	for key, overrideValue := range override {
		baseValue, exists := result[key]

		// nil deletes the key; it never introduces one.
		if overrideValue == nil {
			if exists {
				delete(result, key)
			}
			continue
		}

		if !exists || baseValue == nil {
			result[key] = overrideValue
			continue
		}

		baseMap, baseIsMap := baseValue.(map[string]any)
		overrideMap, overrideIsMap := overrideValue.(map[string]any)
		if baseIsMap && overrideIsMap {
			merged, err := merge(baseMap, overrideMap, depth+1)
			if err != nil {
				return nil, err
			}
			result[key] = merged
			continue
		}

		result[key] = overrideValue
	}

	return result, nil
}
