// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eardeploy/cli/internal/config"
	"github.com/eardeploy/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig *config.Config
	configPath   config.ResolvedValue
)

// NewRootCmd creates the root command for the eardeploy CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eardeploy",
		Short: "Deploy enterprise application archives to Tomcat",
		Long: `eardeploy unpacks an enterprise application archive (.ear) into a Tomcat
installation: shared libraries go to a directory on the server class loader
path, web modules go to the deployment directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: EARDEPLOY_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewDeployCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewPropsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	resolved, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return exitWith(err)
	}
	configPath = resolved

	// A broken config file must not block `config vet` or `version`.
	cfg, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", err)
		cfg = &config.Config{}
	}
	loadedConfig = cfg.WithDefaults()

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(configPath)
	}

	return nil
}

// GetConfig returns the loaded configuration with defaults applied.
func GetConfig() *config.Config {
	if loadedConfig == nil {
		return config.DefaultConfig()
	}
	return loadedConfig
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if configPath.Value != "" {
		return configPath.Value
	}
	return configFlag
}
