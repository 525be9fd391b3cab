package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eardeploy/cli/internal/testutil"
)

// isolateEnv points HOME at a temporary directory and clears every variable
// the CLI reads. It returns the temporary home.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"EARDEPLOY_CONFIG",
		"EARDEPLOY_CATALINA_HOME",
		"EARDEPLOY_CATALINA_BASE",
		"EARDEPLOY_CATALINA_DEPLOY",
		"EARDEPLOY_DEPLOY_CONFLICT",
		"EARDEPLOY_DEPLOY_LIBRARYTARGET",
		"EARDEPLOY_LOG_TIMESTAMPS",
		"CATALINA_HOME",
		"CATALINA_BASE",
		"CATALINA_DEPLOY",
	} {
		t.Setenv(k, "")
	}
	return home
}

// executeCmd runs the root command with args, feeding stdin, and returns
// what was written to stdout.
func executeCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// fixtureEAR builds an archive with one library and one web module.
func fixtureEAR(t *testing.T, libContent, warContent string) string {
	t.Helper()
	desc := testutil.ApplicationXML("lib/",
		[]testutil.WebModule{{ID: "shop", URI: "shop.war", ContextRoot: "/shop"}})
	return testutil.BuildEAR(t, t.TempDir(), desc,
		testutil.Entry{Name: "lib/commons.jar", Content: libContent},
		testutil.Entry{Name: "shop.war", Content: warContent},
	)
}

// tomcatHome creates a Tomcat layout with a catalina.properties listing two
// library directories.
func tomcatHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	testutil.WriteFile(t, home, filepath.Join("conf", "catalina.properties"),
		"# class loaders\n"+
			"common.loader=${catalina.base}/lib,${catalina.base}/lib/*.jar,\\\n"+
			"  ${catalina.home}/shared\n"+
			"shared.loader=\n")
	return home
}
