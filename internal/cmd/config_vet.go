package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/config"
	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the eardeploy configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML with only known keys
  3. Values satisfy the schema (conflict mode, absolute paths)

The config path is resolved using precedence:
  --config flag > EARDEPLOY_CONFIG env > ~/.eardeploy/config.yaml

Examples:
  # Validate default configuration
  eardeploy config vet

  # Validate custom config path
  eardeploy config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configFile, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return exitWith(err)
	}

	output.Debug("validating config", "path", configFile, "source", configPath.Source)

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return exitWith(&eerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configFile,
			Hint:     "Run 'eardeploy config init' to create default configuration",
			Cause:    eerrors.ErrNotFound,
		})
	}

	validator, err := config.NewValidator()
	if err != nil {
		return exitWith(err)
	}
	if err := validator.ValidateFile(configFile); err != nil {
		return exitWith(err)
	}

	output.Println(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+configFile))
	return nil
}
