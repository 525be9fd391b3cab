// Package config provides configuration loading and management.
package config

// DefaultConflictMode is used when neither flag, env nor file sets one.
const DefaultConflictMode = "ask"

// CatalinaConfig locates the Tomcat installation.
type CatalinaConfig struct {
	// Home is the Tomcat installation directory.
	// Env: CATALINA_HOME
	Home string `json:"home,omitempty" mapstructure:"home"`

	// Base is the instance directory. Default: Home.
	// Env: CATALINA_BASE
	Base string `json:"base,omitempty" mapstructure:"base"`

	// Deploy is where web modules are written. Default: <Base>/webapps.
	// Env: CATALINA_DEPLOY
	Deploy string `json:"deploy,omitempty" mapstructure:"deploy"`
}

// DeployConfig holds deployment defaults.
type DeployConfig struct {
	// Conflict selects how existing files are handled: ask, overwrite or skip.
	// Env: EARDEPLOY_DEPLOY_CONFLICT
	Conflict string `json:"conflict,omitempty" mapstructure:"conflict"`

	// LibraryTarget skips the interactive target selection when set.
	// Env: EARDEPLOY_DEPLOY_LIBRARYTARGET
	LibraryTarget string `json:"libraryTarget,omitempty" mapstructure:"libraryTarget"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the eardeploy configuration, loaded from
// ~/.eardeploy/config.yaml and validated against the embedded CUE schema.
type Config struct {
	Catalina CatalinaConfig `json:"catalina,omitempty" mapstructure:"catalina"`
	Deploy   DeployConfig   `json:"deploy,omitempty" mapstructure:"deploy"`
	Log      LogConfig      `json:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `eardeploy config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Deploy: DeployConfig{Conflict: DefaultConflictMode},
	}
}

// WithDefaults returns a copy of c with unset fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Deploy.Conflict == "" {
		out.Deploy.Conflict = DefaultConflictMode
	}
	return &out
}
