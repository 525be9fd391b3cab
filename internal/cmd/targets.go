package cmd

import (
	"github.com/eardeploy/cli/internal/catalina"
	"github.com/eardeploy/cli/internal/cmdutil"
	"github.com/eardeploy/cli/internal/config"
	"github.com/eardeploy/cli/internal/extract"
	"github.com/eardeploy/cli/internal/output"
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = output.IsInteractive

// resolvePaths resolves the Tomcat installation from flags, CATALINA_* and
// the config file.
func resolvePaths(tf *cmdutil.TargetFlags, cfg *config.Config) (catalina.Paths, error) {
	resolved := config.ResolveCatalina(config.CatalinaFlags{
		Home:   tf.CatalinaHome,
		Base:   tf.CatalinaBase,
		Deploy: tf.DeployDir,
	}, cfg)
	config.LogResolvedValues(resolved.Values()...)

	values := resolved.Values()
	expanded := make([]string, len(values))
	for i, v := range values {
		p, err := config.ExpandPath(v.Value)
		if err != nil {
			return catalina.Paths{}, err
		}
		expanded[i] = p
	}
	return catalina.Resolve(expanded[0], expanded[1], expanded[2])
}

// resolveLibraryTarget returns the library directory given by flag or config,
// or "" when it must be chosen from catalina.properties.
func resolveLibraryTarget(tf *cmdutil.TargetFlags, cfg *config.Config) (string, error) {
	v := config.ResolveValue(config.ResolveOptions{
		Key:         "deploy.libraryTarget",
		FlagValue:   tf.LibraryTarget,
		ConfigValue: cfg.Deploy.LibraryTarget,
	})
	config.LogResolvedValues(v)
	return config.ExpandPath(v.Value)
}

// loaderTargets lists the library directories named by catalina.properties.
func loaderTargets(paths catalina.Paths) ([]string, error) {
	doc, err := catalina.LoadProperties(paths)
	if err != nil {
		return nil, err
	}
	targets := catalina.LibraryTargets(doc)
	output.Debug("class loader targets", "properties", paths.Properties, "count", len(targets))
	return targets, nil
}

// resolveConflictMode picks the conflict mode: flag, then EARDEPLOY_DEPLOY_CONFLICT
// or the config file, then ask.
func resolveConflictMode(tf *cmdutil.TargetFlags, cfg *config.Config, decide extract.Decision) (extract.ConflictMode, error) {
	v := config.ResolveValue(config.ResolveOptions{
		Key:          "deploy.conflict",
		FlagValue:    tf.Conflict,
		ConfigValue:  cfg.Deploy.Conflict,
		DefaultValue: config.DefaultConflictMode,
	})
	config.LogResolvedValues(v)
	return extract.ParseConflictMode(v.Value, decide)
}
