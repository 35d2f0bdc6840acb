package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/laminakit/lamina/internal/output"
	"github.com/laminakit/lamina/internal/selection"
)

// newBuildCmd creates the build command.
func newBuildCmd() *cobra.Command {
	var (
		flagFragments []string
		flagExec      string
	)

	cmd := &cobra.Command{
		Use:   "build -f <fragment> [-f <fragment> ...]",
		Short: "Build an artifact from an explicit ordered fragment list",
		Long: `Build folds the given fragments left to right, later fragments overriding
earlier ones. No implicit base, context, or metadata layers are injected,
and any load failure aborts the build.

The merged document is validated and written as an invocation artifact;
validation failure produces no artifact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(flagFragments) == 0 {
				return NewExitError(
					fmt.Errorf("at least one -f fragment is required"),
					ExitUsageError,
				)
			}

			cfg := GetConfig()
			manager := selection.NewManager(newComposer(), cfg.Environment, cfg.ArtifactDir)

			for _, fragment := range flagFragments {
				entry, err := manager.Add(fragment)
				if err != nil {
					return err
				}
				output.Debug("fragment added", "order", entry.Order, "fragment", entry.Label)
			}

			artifact, err := manager.Finalize()
			if err != nil {
				return err
			}

			output.Println(output.FormatCheckmark(fmt.Sprintf(
				"artifact built from %d fragment(s): %s", manager.Len(), artifact)))

			if flagExec == "" {
				return nil
			}
			return runArtifact(cmd.Context(), flagExec, artifact)
		},
	}

	cmd.Flags().StringArrayVarP(&flagFragments, "fragment", "f", nil, "fragment to include, in merge order (repeatable)")
	cmd.Flags().StringVar(&flagExec, "exec", "", "invocation tool to run against the built artifact")

	return cmd
}
