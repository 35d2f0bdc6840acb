package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lerrors "github.com/laminakit/lamina/internal/errors"
	"github.com/laminakit/lamina/internal/invoke"
	"github.com/laminakit/lamina/internal/output"
	"github.com/laminakit/lamina/internal/payload"
)

// newComposeCmd creates the compose command.
func newComposeCmd() *cobra.Command {
	var (
		flagSave bool
		flagExec string
	)

	cmd := &cobra.Command{
		Use:   "compose <fragment>",
		Short: "Compose a fragment with its base, context, and metadata layers",
		Long: `Compose merges the layer stack for a fragment, lowest to highest precedence:

  1. _base/general.yaml               (optional)
  2. _base/context-<env>.yaml         (optional, with fallback)
  3. <fragment dir>/_metadata.yaml    (optional)
  4. the selected fragment            (required)

Missing optional layers become warnings. The composed document is printed
and validated; --save also writes it as an invocation artifact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd.Context(), args[0], flagSave, flagExec)
		},
	}

	cmd.Flags().BoolVar(&flagSave, "save", false, "write the composed document as an artifact")
	cmd.Flags().StringVar(&flagExec, "exec", "", "invocation tool to run against the saved artifact (implies --save)")

	return cmd
}

func runCompose(ctx context.Context, selected string, save bool, execCommand string) error {
	cfg := GetConfig()
	composer := newComposer()

	doc, err := composer.Compose(selected, cfg.Environment)
	if err != nil {
		return err
	}

	for _, warning := range doc.Warnings {
		output.Warn(warning)
	}

	rendered, err := output.RenderPreview(doc.Data, doc.Sources, nil, output.PreviewOptions{
		ShowSources: cfg.ShowSources,
		Format:      output.ParseFormat(outputFormatFlag),
	})
	if err != nil {
		return err
	}
	output.Print(rendered)

	result := payload.Validate(doc.Data)
	for _, w := range result.Warnings {
		output.Warn(w)
	}
	if !result.Valid {
		return fmt.Errorf("%w: %s", lerrors.ErrValidation, strings.Join(result.Errors, "; "))
	}

	if !save && execCommand == "" {
		return nil
	}

	normalized, err := payload.NormalizeBody(doc.Data)
	if err != nil {
		return err
	}

	artifact, err := payload.WriteArtifact(cfg.ArtifactDir, normalized)
	if err != nil {
		return err
	}
	output.Println(output.FormatCheckmark("artifact written: " + artifact))

	if execCommand == "" {
		return nil
	}

	return runArtifact(ctx, execCommand, artifact)
}

// runArtifact hands a finalized artifact to the configured invocation tool.
func runArtifact(ctx context.Context, command, artifact string) error {
	runner, err := invoke.NewExecRunner(command)
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}

	return output.RunWithSpinner(ctx, func() error {
		return runner.Run(ctx, artifact)
	}, output.WithTitle("Invoking with "+runner.Command[0]+"..."))
}
