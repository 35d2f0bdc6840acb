// Package invoke hands a finalized artifact to an external invocation tool.
// The tool's protocol is its own business; this package only appends the
// artifact path to the configured command line and relays output.
package invoke

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external tool against an artifact.
type Runner interface {
	// Run invokes the tool with the artifact path and relays its output.
	Run(ctx context.Context, artifactPath string) error
}

// ExecRunner invokes a command-line tool as a subprocess.
type ExecRunner struct {
	// Command is the tool and its leading arguments; the artifact path is
	// appended as the final argument.
	Command []string
}

// NewExecRunner parses a command string into an ExecRunner.
func NewExecRunner(command string) (*ExecRunner, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty invocation command")
	}
	return &ExecRunner{Command: fields}, nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, artifactPath string) error {
	args := append(append([]string{}, r.Command[1:]...), artifactPath)

	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", r.Command[0], err)
	}
	return nil
}
