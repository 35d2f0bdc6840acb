package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/laminakit/lamina/internal/output"
	"github.com/laminakit/lamina/internal/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show Lamina CLI version, commit, and build date.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			output.Println(fmt.Sprintf("lamina version %s", info.Version))
			output.Println(fmt.Sprintf("  Commit:  %s", info.Commit))
			output.Println(fmt.Sprintf("  Built:   %s", info.Date))
			output.Println(fmt.Sprintf("  Go:      %s", runtime.Version()))

			return nil
		},
	}
}
