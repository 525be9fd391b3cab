package config

import (
	"os"

	"github.com/eardeploy/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveOptions describes the candidates for one setting.
type ResolveOptions struct {
	// Key names the setting in logs.
	Key string
	// FlagValue is the command-line value (empty if not set).
	FlagValue string
	// EnvVar is the environment variable consulted (empty to skip).
	EnvVar string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// DefaultValue is used when nothing else is set.
	DefaultValue string
}

// ResolvedValue is a setting with the source that won.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveValue applies the precedence flag > env > config > default.
// Source is empty when no candidate is set.
func ResolveValue(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.DefaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) EARDEPLOY_CONFIG env, (3) ~/.eardeploy/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return ResolveValue(ResolveOptions{
		Key:          "config",
		FlagValue:    flagValue,
		EnvVar:       EnvConfig,
		DefaultValue: paths.ConfigFile,
	}), nil
}

// Environment variables read by ResolveCatalina.
const (
	EnvCatalinaHome   = "CATALINA_HOME"
	EnvCatalinaBase   = "CATALINA_BASE"
	EnvCatalinaDeploy = "CATALINA_DEPLOY"
)

// CatalinaFlags holds the --catalina-home, --catalina-base and --deploy-dir values.
type CatalinaFlags struct {
	Home   string
	Base   string
	Deploy string
}

// ResolvedCatalina holds the resolved Tomcat settings.
type ResolvedCatalina struct {
	Home   ResolvedValue
	Base   ResolvedValue
	Deploy ResolvedValue
}

// Values returns the settings in logging order.
func (r ResolvedCatalina) Values() []ResolvedValue {
	return []ResolvedValue{r.Home, r.Base, r.Deploy}
}

// ResolveCatalina resolves the Tomcat settings with precedence
// flag > CATALINA_* env > config file. Defaults are applied later by
// catalina.Resolve, which derives base and deploy from home.
func ResolveCatalina(flags CatalinaFlags, cfg *Config) ResolvedCatalina {
	if cfg == nil {
		cfg = &Config{}
	}
	return ResolvedCatalina{
		Home: ResolveValue(ResolveOptions{
			Key: "catalina.home", FlagValue: flags.Home,
			EnvVar: EnvCatalinaHome, ConfigValue: cfg.Catalina.Home,
		}),
		Base: ResolveValue(ResolveOptions{
			Key: "catalina.base", FlagValue: flags.Base,
			EnvVar: EnvCatalinaBase, ConfigValue: cfg.Catalina.Base,
		}),
		Deploy: ResolveValue(ResolveOptions{
			Key: "catalina.deploy", FlagValue: flags.Deploy,
			EnvVar: EnvCatalinaDeploy, ConfigValue: cfg.Catalina.Deploy,
		}),
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
