package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/eardeploy/cli/internal/config"
	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the eardeploy configuration.

Creates ~/.eardeploy/config.yaml (or the file named by --config or
EARDEPLOY_CONFIG) holding the default settings. Edit it to set the Tomcat
installation, the library target and the conflict mode.

Examples:
  # Initialize configuration
  eardeploy config init

  # Overwrite existing configuration
  eardeploy config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	configFile := GetConfigPath()
	if configFile == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return exitWith(eerrors.Wrap(eerrors.ErrNotFound, "could not determine home directory"))
		}
		configFile = paths.ConfigFile
	}
	configFile, err := config.ExpandPath(configFile)
	if err != nil {
		return exitWith(err)
	}

	if _, err := os.Stat(configFile); err == nil && !force {
		return exitWith(&eerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    eerrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return exitWith(err)
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
		return exitWith(eerrors.NewPermissionError("could not create config directory",
			map[string]string{"path": filepath.Dir(configFile)}, ""))
	}

	// Write config with secure permissions (0600)
	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return exitWith(eerrors.NewPermissionError("could not write config file",
			map[string]string{"path": configFile}, ""))
	}

	out := cmd.OutOrStdout()
	output.Println(out, output.FormatCheckmark("Configuration initialized at "+configFile))
	output.Println(out, "Validate with: eardeploy config vet")

	return nil
}
