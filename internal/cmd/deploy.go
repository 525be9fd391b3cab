package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/cmdutil"
	"github.com/eardeploy/cli/internal/ear"
	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/extract"
	"github.com/eardeploy/cli/internal/output"
	"github.com/eardeploy/cli/internal/prompt"
)

// NewDeployCmd creates the deploy command.
func NewDeployCmd() *cobra.Command {
	var tf cmdutil.TargetFlags

	var (
		yesFlag    bool
		dryRunFlag bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <app.ear>",
		Short: "Deploy an archive into Tomcat",
		Long: `Deploy an enterprise application archive into a Tomcat installation.

Shared libraries from the archive's library directory are written to a
directory on a Tomcat class loader path. Unless --library-target is given,
the candidates are read from <catalina-base>/conf/catalina.properties
(common.loader, shared.loader, server.loader) and you choose one.
Web modules are written to the deployment directory.

Existing files are handled according to --conflict:
  ask        compare checksums and ask before overwriting (default)
  overwrite  always replace
  skip       never replace

Examples:
  # Deploy, choosing the library directory interactively
  eardeploy deploy shop.ear --catalina-home /opt/tomcat

  # Unattended deployment
  eardeploy deploy shop.ear --library-target /opt/tomcat/lib --conflict overwrite --yes

  # Show what would change without writing
  eardeploy deploy shop.ear --library-target /opt/tomcat/lib --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, args[0], &tf, yesFlag, dryRunFlag)
		},
	}

	tf.AddTo(cmd)

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false,
		"Do not ask for confirmation before deploying")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"Report what would be written without writing anything")

	return cmd
}

// runDeploy executes the deployment:
//
//  1. Index the archive
//  2. Resolve the installation, conflict mode and library target
//  3. Show the summary and ask for confirmation
//  4. Extract libraries, then web modules
func runDeploy(cmd *cobra.Command, path string, tf *cmdutil.TargetFlags, yes, dryRun bool) error {
	out := cmd.OutOrStdout()
	cfg := GetConfig()
	p := prompt.New(cmd.InOrStdin(), out)

	archive, err := ear.Open(path)
	if err != nil {
		return exitWith(err)
	}
	defer archive.Close()

	name := filepath.Base(path)
	archiveLog := output.ArchiveLogger(name)
	archiveLog.Debug("archive indexed",
		"version", archive.Application().Version,
		"libraries", len(archive.Libraries()),
		"modules", len(archive.Modules()),
	)

	paths, err := resolvePaths(tf, cfg)
	if err != nil {
		return exitWith(err)
	}

	mode, err := resolveConflictMode(tf, cfg, p.OverwriteDecision())
	if err != nil {
		return exitWith(err)
	}
	if mode.Interactive() && !yes && !dryRun && !stdinIsTerminal() {
		return exitWith(eerrors.NewValidationError(
			"conflict mode ask needs an interactive terminal", "", "conflict",
			"Pass --yes, or choose --conflict overwrite or --conflict skip."))
	}

	libTarget, err := resolveLibraryTarget(tf, cfg)
	if err != nil {
		return exitWith(err)
	}
	if libTarget == "" && len(archive.Libraries()) > 0 {
		targets, err := loaderTargets(paths)
		if err != nil {
			return exitWith(err)
		}
		libTarget, err = p.ChooseTarget(targets)
		if err != nil {
			return exitWith(err)
		}
	}

	writeDeploySummary(cmd, name, archive, libTarget, paths.Deploy, mode)

	for _, m := range archive.Modules() {
		if m.Web() == nil {
			archiveLog.Warn("module type is not deployed", "type", m.Type())
		}
	}

	engine := extract.New(archive)

	if dryRun {
		results, err := planMembers(engine, archive, []string{libTarget}, paths.Deploy)
		cmdutil.WriteMemberLines(out, results)
		return exitWith(err)
	}

	if !yes {
		ok, err := p.Confirm("Proceed with deployment?")
		if err != nil {
			return exitWith(err)
		}
		if !ok {
			return exitWith(eerrors.Wrap(eerrors.ErrAborted, "deployment cancelled"))
		}
	}

	var results []cmdutil.MemberResult
	deploy := func() error {
		for _, lib := range archive.Libraries() {
			wrote, err := engine.ExtractLibrary(libTarget, lib, mode)
			if err != nil {
				return err
			}
			results = append(results, cmdutil.MemberResult{
				Kind: cmdutil.KindLibrary, Name: lib.Basename,
				Target: libTarget, Status: cmdutil.WroteStatus(wrote),
			})
		}
		for _, m := range archive.WebModules() {
			wrote, err := engine.ExtractModule(paths.Deploy, m, mode)
			if err != nil {
				return err
			}
			results = append(results, cmdutil.MemberResult{
				Kind: cmdutil.KindWeb, Name: m.Member.Basename,
				Target: paths.Deploy, Status: cmdutil.WroteStatus(wrote),
			})
		}
		return nil
	}

	// Prompts and the spinner cannot share the terminal.
	if mode.Interactive() {
		err = deploy()
	} else {
		err = output.RunWithSpinner(cmd.Context(), "Deploying "+name, deploy)
	}

	cmdutil.WriteMemberLines(out, results)
	if err != nil {
		archiveLog.Error("deployment stopped", "deployed", len(results))
		return exitWith(err)
	}

	output.Println(out, cmdutil.DeploySummary(name, results))
	return nil
}

func writeDeploySummary(cmd *cobra.Command, name string, archive *ear.Archive, libTarget, deployDir string, mode extract.ConflictMode) {
	out := cmd.OutOrStdout()
	output.Println(out, fmt.Sprintf("Deploying %s (conflict: %s)", output.StyleNoun.Render(name), mode))
	if n := len(archive.Libraries()); n > 0 {
		output.Println(out, fmt.Sprintf("  %d libraries   -> %s", n, output.StylePath.Render(libTarget)))
	}
	if n := len(archive.WebModules()); n > 0 {
		output.Println(out, fmt.Sprintf("  %d web modules -> %s", n, output.StylePath.Render(deployDir)))
	}
}
