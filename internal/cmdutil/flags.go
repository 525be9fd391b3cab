// Package cmdutil provides shared command utilities: flag groups reused by
// several subcommands and helpers for reporting per-member results.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/extract"
	"github.com/eardeploy/cli/internal/output"
)

// TargetFlags holds flags locating the Tomcat installation and the
// deployment destinations (deploy, status).
type TargetFlags struct {
	LibraryTarget string
	DeployDir     string
	CatalinaHome  string
	CatalinaBase  string
	Conflict      string
}

// AddTo registers the target flags on the given cobra command.
func (f *TargetFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.LibraryTarget, "library-target", "",
		"Directory for shared libraries (default: chosen from catalina.properties)")
	cmd.Flags().StringVar(&f.DeployDir, "deploy-dir", "",
		"Directory for web modules (env: CATALINA_DEPLOY, default: <catalina-base>/webapps)")
	cmd.Flags().StringVar(&f.CatalinaHome, "catalina-home", "",
		"Tomcat installation directory (env: CATALINA_HOME)")
	cmd.Flags().StringVar(&f.CatalinaBase, "catalina-base", "",
		"Tomcat instance directory (env: CATALINA_BASE, default: catalina-home)")
	cmd.Flags().StringVar(&f.Conflict, "conflict", "",
		fmt.Sprintf("How to handle existing files: %s (default: from config, then ask)",
			strings.Join(extract.ConflictModes(), ", ")))
}

// OutputFlags holds the -o flag of commands printing documents.
type OutputFlags struct {
	Format string

	allowed []string
}

// NewOutputFlags returns an OutputFlags accepting the given formats; the
// first one is the default.
func NewOutputFlags(allowed ...string) *OutputFlags {
	return &OutputFlags{allowed: allowed}
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	def := ""
	if len(f.allowed) > 0 {
		def = f.allowed[0]
	}
	cmd.Flags().StringVarP(&f.Format, "output", "o", def,
		fmt.Sprintf("Output format: %s", strings.Join(f.allowed, ", ")))
}

// Parse returns the selected format, rejecting formats not allowed here.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if ok {
		for _, a := range f.allowed {
			if a == string(format) {
				return format, nil
			}
		}
	}
	return "", eerrors.NewValidationError(
		fmt.Sprintf("invalid output format %q", f.Format), "", "output",
		fmt.Sprintf("Valid formats: %s", strings.Join(f.allowed, ", ")))
}

// SubstitutionFlags holds repeated --set name=value pairs.
type SubstitutionFlags struct {
	Values []string
}

// AddTo registers the substitution flag on the given cobra command.
func (f *SubstitutionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Values, "set", nil,
		"Substitute ${name} with value (can be repeated)")
}

// Map parses the pairs. Later pairs override earlier ones.
func (f *SubstitutionFlags) Map() (map[string]string, error) {
	subs := make(map[string]string, len(f.Values))
	for _, kv := range f.Values {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, eerrors.NewValidationError(
				fmt.Sprintf("invalid substitution %q", kv), "", "set",
				"Use --set name=value")
		}
		subs[strings.TrimSpace(name)] = value
	}
	return subs, nil
}
