package cmd

import (
	"github.com/spf13/cobra"

	"github.com/laminakit/lamina/internal/output"
)

// newDiffCmd creates the diff command.
func newDiffCmd() *cobra.Command {
	var flagNoColor bool

	cmd := &cobra.Command{
		Use:   "diff <fragment> <fragment>",
		Short: "Diff two composed documents",
		Long: `Diff composes both fragments with the active environment's layer stack and
reports the semantic differences between the merged documents. Identical
documents produce no output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig()
			composer := newComposer()

			fromDoc, err := composer.Compose(args[0], cfg.Environment)
			if err != nil {
				return err
			}
			toDoc, err := composer.Compose(args[1], cfg.Environment)
			if err != nil {
				return err
			}

			for _, warning := range append(fromDoc.Warnings, toDoc.Warnings...) {
				output.Warn(warning)
			}

			useColor := !flagNoColor && output.IsTTY()
			report, err := output.DiffDocuments(args[0], fromDoc.Data, args[1], toDoc.Data, useColor)
			if err != nil {
				return err
			}

			if report == "" {
				output.Println(output.FormatCheckmark("documents are identical"))
				return nil
			}

			output.Println(report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored diff output")

	return cmd
}
