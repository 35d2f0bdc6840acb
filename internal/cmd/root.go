package cmd

import (
	"github.com/spf13/cobra"

	"github.com/laminakit/lamina/internal/config"
	"github.com/laminakit/lamina/internal/discovery"
	"github.com/laminakit/lamina/internal/output"
	"github.com/laminakit/lamina/internal/payload"
	"github.com/laminakit/lamina/internal/registry"
	"github.com/laminakit/lamina/internal/version"
)

var (
	// Global flags
	configFlag       string
	environmentFlag  string
	payloadsDirFlag  string
	artifactDirFlag  string
	outputFormatFlag string
	verboseFlag      bool

	// Resolved configuration (loaded during PersistentPreRunE)
	laminaConfig *config.Config
)

// NewRootCmd creates the root command for the Lamina CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lamina",
		Short: "Layered payload composition for serverless invocation",
		Long: `Lamina composes invocation payloads from layered YAML and JSON fragments.

It provides commands to:
  - Compose a fragment with its base, context, and metadata layers
  - Build an artifact from an explicit ordered fragment list
  - List selectable fragments, including legacy fixture directories
  - Validate composed documents, optionally against a CUE schema
  - Diff two composed documents`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file (env: LAMINA_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&environmentFlag, "env", "e", "", "target environment (env: LAMINA_ENVIRONMENT)")
	rootCmd.PersistentFlags().StringVar(&payloadsDirFlag, "payloads-dir", "", "fragment root directory (env: LAMINA_PAYLOADS_DIR)")
	rootCmd.PersistentFlags().StringVar(&artifactDirFlag, "artifact-dir", "", "artifact output directory (env: LAMINA_ARTIFACT_DIR)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "json", "output format: json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "increase output verbosity")

	// Framework commands are registered explicitly; projects replace or
	// extend them by name through Registry.Override before Commands is
	// called. There is no scan-based discovery.
	reg := registry.New()
	reg.Register("compose", newComposeCmd)
	reg.Register("build", newBuildCmd)
	reg.Register("list", newListCmd)
	reg.Register("vet", newVetCmd)
	reg.Register("diff", newDiffCmd)
	reg.Register("version", newVersionCmd)

	rootCmd.AddCommand(reg.Commands()...)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	output.SetupLogging(verboseFlag)

	info := version.GetInfo()
	output.Debug("Lamina CLI started", "version", info.Version)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		return err
	}

	// Flags override config file and environment variables.
	if environmentFlag != "" {
		cfg.Environment = environmentFlag
	}
	if payloadsDirFlag != "" {
		cfg.PayloadsDir = payloadsDirFlag
	}
	if artifactDirFlag != "" {
		cfg.ArtifactDir = artifactDirFlag
	}

	laminaConfig = cfg

	if verboseFlag {
		output.Debug("resolved configuration",
			"payloadsDir", cfg.PayloadsDir,
			"environment", cfg.Environment,
			"sharedPayloadsDir", cfg.SharedPayloadsDir,
			"functionsDir", cfg.FunctionsDir,
			"artifactDir", cfg.ArtifactDir,
		)
	}

	return nil
}

// GetConfig returns the resolved configuration.
func GetConfig() *config.Config {
	if laminaConfig != nil {
		return laminaConfig
	}
	return config.DefaultConfig()
}

// newComposer creates a composer over the configured fragment root.
func newComposer() *payload.Composer {
	return payload.NewComposer(GetConfig().PayloadsDir)
}

// newLister creates a fragment lister over the configured locations.
func newLister() *discovery.Lister {
	cfg := GetConfig()
	return discovery.NewLister(cfg.PayloadsDir, cfg.SharedPayloadsDir, cfg.FunctionsDir)
}
