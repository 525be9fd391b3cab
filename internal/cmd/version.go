package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/output"
	"github.com/eardeploy/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show eardeploy version information.

Displays the CLI version, commit, build date and Go version.`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()
	out := cmd.OutOrStdout()

	output.Println(out, fmt.Sprintf("eardeploy version %s", info.Version))
	output.Println(out, fmt.Sprintf("  Commit:    %s", info.GitCommit))
	output.Println(out, fmt.Sprintf("  Built:     %s", info.BuildDate))
	output.Println(out, fmt.Sprintf("  Go:        %s", info.GoVersion))

	return nil
}
