package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/cmdutil"
	"github.com/eardeploy/cli/internal/ear"
	"github.com/eardeploy/cli/internal/extract"
	"github.com/eardeploy/cli/internal/output"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var tf cmdutil.TargetFlags

	cmd := &cobra.Command{
		Use:   "status <app.ear>",
		Short: "Compare an archive with what is deployed",
		Long: `Show, for every library and web module in the archive, whether the
deployed file is missing (new), identical (unchanged) or different (changed).

Without --library-target, libraries are checked against every directory
listed by the class loader keys of catalina.properties.

Examples:
  eardeploy status shop.ear --catalina-home /opt/tomcat
  eardeploy status shop.ear --library-target /opt/tomcat/lib --deploy-dir /srv/webapps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, args[0], &tf)
		},
	}

	tf.AddTo(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, path string, tf *cmdutil.TargetFlags) error {
	cfg := GetConfig()

	archive, err := ear.Open(path)
	if err != nil {
		return exitWith(err)
	}
	defer archive.Close()

	paths, err := resolvePaths(tf, cfg)
	if err != nil {
		return exitWith(err)
	}

	libTarget, err := resolveLibraryTarget(tf, cfg)
	if err != nil {
		return exitWith(err)
	}
	targets := []string{libTarget}
	if libTarget == "" && len(archive.Libraries()) > 0 {
		if targets, err = loaderTargets(paths); err != nil {
			return exitWith(err)
		}
	}

	results, err := planMembers(extract.New(archive), archive, targets, paths.Deploy)
	if err != nil {
		return exitWith(err)
	}

	output.Println(cmd.OutOrStdout(), output.RenderMemberTable(cmdutil.MemberRows(results)))
	return nil
}

// planMembers reports the status of every library in each of libTargets and
// of every web module in deployDir.
func planMembers(engine *extract.Engine, archive *ear.Archive, libTargets []string, deployDir string) ([]cmdutil.MemberResult, error) {
	var results []cmdutil.MemberResult
	for _, lib := range archive.Libraries() {
		for _, target := range libTargets {
			status, err := engine.Plan(target, lib)
			if err != nil {
				return results, err
			}
			results = append(results, cmdutil.MemberResult{
				Kind: cmdutil.KindLibrary, Name: lib.Basename,
				Target: target, Status: string(status),
			})
		}
	}
	for _, m := range archive.WebModules() {
		status, err := engine.Plan(deployDir, *m.Member)
		if err != nil {
			return results, err
		}
		results = append(results, cmdutil.MemberResult{
			Kind: cmdutil.KindWeb, Name: m.Member.Basename,
			Target: deployDir, Status: string(status),
		})
	}
	return results, nil
}
