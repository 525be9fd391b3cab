package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/cmdutil"
	"github.com/eardeploy/cli/internal/ear"
	"github.com/eardeploy/cli/internal/output"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	of := cmdutil.NewOutputFlags(output.ValidInspectFormats()...)

	cmd := &cobra.Command{
		Use:   "inspect <app.ear>",
		Short: "Show the contents of an archive",
		Long: `Index an archive and show its descriptor metadata, modules and libraries.

The archive is checked the same way deploy checks it: every entry's
checksum is verified and every declared module must be present.

Examples:
  eardeploy inspect shop.ear
  eardeploy inspect shop.ear -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], of)
		},
	}

	of.AddTo(cmd)

	return cmd
}

func runInspect(cmd *cobra.Command, path string, of *cmdutil.OutputFlags) error {
	format, err := of.Parse()
	if err != nil {
		return exitWith(err)
	}

	archive, err := ear.Open(path)
	if err != nil {
		return exitWith(err)
	}
	defer archive.Close()

	out := cmd.OutOrStdout()
	if format != output.FormatTable {
		return exitWith(output.WriteDocument(out, archive.Manifest(), format))
	}

	app := archive.Application()
	title := filepath.Base(path)
	if app.DisplayName != "" {
		title = fmt.Sprintf("%s (%s)", title, app.DisplayName)
	}
	output.Println(out, fmt.Sprintf("%s  version %s  library directory %q",
		output.StyleNoun.Render(title), app.Version, app.LibraryDirectory))
	output.Println(out, output.RenderMemberTable(inventoryRows(archive)))
	return nil
}

// inventoryRows lists modules in declaration order, then libraries.
func inventoryRows(archive *ear.Archive) []output.MemberRow {
	var rows []output.MemberRow
	for _, m := range archive.Modules() {
		row := output.MemberRow{Kind: m.Type(), Name: "-", CRC32: "-", Size: "-"}
		if m.Member != nil {
			row.Name = m.Member.Filename
			row.CRC32 = ear.FormatCRC(m.Member.CRC32)
			row.Size = strconv.FormatUint(m.Member.Size, 10)
		}
		rows = append(rows, row)
	}
	for _, lib := range archive.Libraries() {
		rows = append(rows, output.MemberRow{
			Kind:  cmdutil.KindLibrary,
			Name:  lib.Filename,
			CRC32: ear.FormatCRC(lib.CRC32),
			Size:  strconv.FormatUint(lib.Size, 10),
		})
	}
	return rows
}
