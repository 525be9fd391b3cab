package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/ear"
	"github.com/eardeploy/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old.ear> <new.ear>",
		Short: "Compare two archives",
		Long: `Compare the deployable members of two archives by checksum and show
changes to the application descriptor metadata.

Examples:
  eardeploy diff shop-1.0.ear shop-1.1.ear`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runDiff(cmd *cobra.Command, fromPath, toPath string) error {
	from, err := ear.Open(fromPath)
	if err != nil {
		return exitWith(err)
	}
	defer from.Close()

	to, err := ear.Open(toPath)
	if err != nil {
		return exitWith(err)
	}
	defer to.Close()

	fromMan, toMan := from.Manifest(), to.Manifest()
	changes := ear.Compare(fromMan, toMan)
	output.Debug("archives compared",
		"added", len(changes.Added),
		"removed", len(changes.Removed),
		"modified", len(changes.Modified),
	)

	useColor := output.IsTTY()
	styles := output.NoColorStyles()
	if useColor {
		styles = output.GetStyles()
	}

	out := cmd.OutOrStdout()

	appDiff, err := output.DiffDocuments(
		filepath.Base(fromPath), fromMan.Application,
		filepath.Base(toPath), toMan.Application,
		useColor)
	if err != nil {
		return exitWith(err)
	}
	if appDiff != "" {
		output.Println(out, "Application:")
		output.Println(out, output.IndentDiff(appDiff, "  "))
	}

	modified := make([]output.ModifiedItem, 0, len(changes.Modified))
	for _, c := range changes.Modified {
		modified = append(modified, output.ModifiedItem{
			Name: c.Name,
			Diff: fmt.Sprintf("crc32 %s -> %s\nsize  %d -> %d", c.From.CRC32, c.To.CRC32, c.From.Size, c.To.Size),
		})
	}
	output.Println(out, output.RenderDiff(changes.Added, changes.Removed, modified, styles))
	return nil
}
