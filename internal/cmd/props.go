package cmd

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/cmdutil"
	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/output"
	"github.com/eardeploy/cli/internal/properties"
)

// NewPropsCmd creates the props command.
func NewPropsCmd() *cobra.Command {
	of := cmdutil.NewOutputFlags(output.ValidDocumentFormats()...)
	var sf cmdutil.SubstitutionFlags

	var (
		assignFlag  string
		commentFlag string
		splitFlag   string
	)

	cmd := &cobra.Command{
		Use:   "props <file>",
		Short: "Parse a properties file",
		Long: `Parse a properties file the way deploy reads catalina.properties and print
the result. Values containing the split character become lists; ${name}
placeholders are replaced with --set values after splitting.

Examples:
  eardeploy props /opt/tomcat/conf/catalina.properties --set catalina.home=/opt/tomcat
  eardeploy props app.conf --assign : --comment ';' -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := of.Parse()
			if err != nil {
				return exitWith(err)
			}
			subs, err := sf.Map()
			if err != nil {
				return exitWith(err)
			}
			opts, err := syntaxOptions(assignFlag, commentFlag, splitFlag)
			if err != nil {
				return exitWith(err)
			}
			return runProps(cmd, args[0], subs, format, opts)
		},
	}

	of.AddTo(cmd)
	sf.AddTo(cmd)
	cmd.Flags().StringVar(&assignFlag, "assign", "=", "Character separating keys from values")
	cmd.Flags().StringVar(&commentFlag, "comment", "#", "Character starting a comment")
	cmd.Flags().StringVar(&splitFlag, "split", ",", "Character separating list items")

	return cmd
}

func runProps(cmd *cobra.Command, path string, subs map[string]string, format output.OutputFormat, opts []properties.Option) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return exitWith(eerrors.NewNotFoundError("properties file not found", path, ""))
		}
		return exitWith(err)
	}
	defer f.Close()

	doc, err := properties.Parse(f, subs, opts...)
	if err != nil {
		var detail *eerrors.DetailError
		if errors.As(err, &detail) && detail.Location == "" {
			detail.Location = path
		}
		return exitWith(err)
	}

	output.Debug("properties parsed", "path", path, "keys", len(doc))
	return exitWith(output.WriteDocument(cmd.OutOrStdout(), doc, format))
}

// syntaxOptions converts the single-character syntax flags.
func syntaxOptions(assign, comment, split string) ([]properties.Option, error) {
	flags := []struct {
		name  string
		value string
		opt   func(rune) properties.Option
	}{
		{"assign", assign, properties.WithAssign},
		{"comment", comment, properties.WithComment},
		{"split", split, properties.WithSplit},
	}

	opts := make([]properties.Option, 0, len(flags))
	for _, f := range flags {
		if utf8.RuneCountInString(f.value) != 1 {
			return nil, eerrors.NewValidationError(
				fmt.Sprintf("--%s must be a single character, got %q", f.name, f.value), "", f.name, "")
		}
		r, _ := utf8.DecodeRuneInString(f.value)
		opts = append(opts, f.opt(r))
	}
	return opts, nil
}
