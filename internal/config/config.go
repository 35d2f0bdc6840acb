// Package config provides configuration loading and management.
package config

// Config represents the Lamina CLI configuration.
type Config struct {
	// PayloadsDir is the root of the structured fragment tree.
	// Env: LAMINA_PAYLOADS_DIR, Default: "payloads"
	PayloadsDir string `mapstructure:"payloadsDir"`

	// Environment selects the per-environment context layer.
	// Env: LAMINA_ENVIRONMENT, Default: "dev"
	Environment string `mapstructure:"environment"`

	// SharedPayloadsDir is the shared legacy fixture directory.
	// Env: LAMINA_SHARED_PAYLOADS_DIR, Default: "test-payloads"
	SharedPayloadsDir string `mapstructure:"sharedPayloadsDir"`

	// FunctionsDir holds per-target directories with legacy payloads/.
	// Env: LAMINA_FUNCTIONS_DIR, Default: "functions"
	FunctionsDir string `mapstructure:"functionsDir"`

	// ArtifactDir receives finalized artifacts.
	// Env: LAMINA_ARTIFACT_DIR, Default: os.TempDir()
	ArtifactDir string `mapstructure:"artifactDir"`

	// ShowSources controls whether composed previews list merge sources.
	// Env: LAMINA_SHOW_SOURCES, Default: true
	ShowSources bool `mapstructure:"showSources"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		PayloadsDir:       "payloads",
		Environment:       "dev",
		SharedPayloadsDir: "test-payloads",
		FunctionsDir:      "functions",
		ShowSources:       true,
	}
}

// WithDefaults fills empty fields from DefaultConfig and returns the config.
func (c *Config) WithDefaults() *Config {
	defaults := DefaultConfig()

	if c.PayloadsDir == "" {
		c.PayloadsDir = defaults.PayloadsDir
	}
	if c.Environment == "" {
		c.Environment = defaults.Environment
	}
	if c.SharedPayloadsDir == "" {
		c.SharedPayloadsDir = defaults.SharedPayloadsDir
	}
	if c.FunctionsDir == "" {
		c.FunctionsDir = defaults.FunctionsDir
	}

	return c
}

// Merge overwrites fields of c with non-empty fields of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.PayloadsDir != "" {
		c.PayloadsDir = other.PayloadsDir
	}
	if other.Environment != "" {
		c.Environment = other.Environment
	}
	if other.SharedPayloadsDir != "" {
		c.SharedPayloadsDir = other.SharedPayloadsDir
	}
	if other.FunctionsDir != "" {
		c.FunctionsDir = other.FunctionsDir
	}
	if other.ArtifactDir != "" {
		c.ArtifactDir = other.ArtifactDir
	}
}

// IsEmpty reports whether every field has its zero value.
func (c *Config) IsEmpty() bool {
	return c.PayloadsDir == "" &&
		c.Environment == "" &&
		c.SharedPayloadsDir == "" &&
		c.FunctionsDir == "" &&
		c.ArtifactDir == ""
}
