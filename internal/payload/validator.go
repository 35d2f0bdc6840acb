package payload

import "fmt"

// requiredFields must be present in every composed document.
var requiredFields = []string{"version", "routeKey", "rawPath"}

// recommendedFields produce warnings when absent but do not fail validation.
var recommendedFields = []string{"requestContext", "headers"}

// bodyField is the payload body; its shape is constrained when present.
const bodyField = "body"

// ValidationResult reports the outcome of validating a composed document.
type ValidationResult struct {
	// Valid is true iff Errors is empty.
	Valid bool

	// Errors lists conditions that make the document unusable.
	Errors []string

	// Warnings lists recommended fields that are missing.
	Warnings []string
}

// Validate checks a composed document against the required and recommended
// field schema. The input is never mutated.
func Validate(document map[string]any) ValidationResult {
	var errs, warnings []string

	for _, field := range requiredFields {
		if _, ok := document[field]; !ok {
			errs = append(errs, fmt.Sprintf("missing required field: %s", field))
		}
	}

	for _, field := range recommendedFields {
		if _, ok := document[field]; !ok {
			warnings = append(warnings, fmt.Sprintf("missing recommended field: %s", field))
		}
	}

	if body, ok := document[bodyField]; ok {
		switch body.(type) {
		case string, map[string]any, []any, nil:
		default:
			errs = append(errs, fmt.Sprintf(
				"body must be string, map, list, or null, got %T", body))
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
