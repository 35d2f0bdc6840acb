package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lerrors "github.com/laminakit/lamina/internal/errors"
	"github.com/laminakit/lamina/internal/output"
	"github.com/laminakit/lamina/internal/payload"
	"github.com/laminakit/lamina/internal/schema"
)

// newVetCmd creates the vet command.
func newVetCmd() *cobra.Command {
	var flagSchema string

	cmd := &cobra.Command{
		Use:   "vet <fragment>",
		Short: "Compose a fragment and validate the result",
		Long: `Vet composes the fragment with its layer stack and validates the merged
document: required fields must be present and the body field, when set,
must be a string, map, list, or null. Missing recommended fields are
reported as warnings.

With --schema, the document is additionally checked against a CUE schema.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(args[0], flagSchema)
		},
	}

	cmd.Flags().StringVar(&flagSchema, "schema", "", "CUE schema file to check the composed document against")

	return cmd
}

func runVet(selected, schemaPath string) error {
	cfg := GetConfig()

	doc, err := newComposer().Compose(selected, cfg.Environment)
	if err != nil {
		return err
	}

	for _, warning := range doc.Warnings {
		output.Warn(warning)
	}

	result := payload.Validate(doc.Data)
	output.Print(output.RenderValidation(result.Errors, result.Warnings))
	if !result.Valid {
		return fmt.Errorf("%w: %s", lerrors.ErrValidation, strings.Join(result.Errors, "; "))
	}

	if schemaPath == "" {
		return nil
	}

	checker, err := schema.LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	if err := checker.Check(doc.Data); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("schema check passed"))
	return nil
}
