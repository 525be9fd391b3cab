package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/testutil"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewDeployCmd(t *testing.T) {
	cmd := NewDeployCmd()

	assert.Equal(t, "deploy <app.ear>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	for _, name := range []string{"yes", "dry-run", "library-target", "deploy-dir", "catalina-home", "catalina-base", "conflict"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q", name)
	}
}

func TestDeploy_Unattended(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	libDir := filepath.Join(t.TempDir(), "lib")
	ear := fixtureEAR(t, "commons v1", "war v1")

	out, err := executeCmd(t, "", "deploy", ear,
		"--catalina-home", home,
		"--library-target", libDir,
		"--conflict", "overwrite",
		"--yes")
	require.NoError(t, err)

	assert.Equal(t, "commons v1", readFile(t, filepath.Join(libDir, "commons.jar")))
	assert.Equal(t, "war v1", readFile(t, filepath.Join(home, "webapps", "shop.war")))
	assert.Contains(t, out, "library:commons.jar")
	assert.Contains(t, out, "web:shop.war")
	assert.Contains(t, out, "Deployed app.ear: 2 written, 0 skipped")
}

func TestDeploy_SkipExisting(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	libDir := t.TempDir()
	testutil.WriteFile(t, libDir, "commons.jar", "old commons")
	ear := fixtureEAR(t, "commons v2", "war v2")

	out, err := executeCmd(t, "", "deploy", ear,
		"--catalina-home", home,
		"--library-target", libDir,
		"--conflict", "skip",
		"--yes")
	require.NoError(t, err)

	assert.Equal(t, "old commons", readFile(t, filepath.Join(libDir, "commons.jar")))
	assert.Equal(t, "war v2", readFile(t, filepath.Join(home, "webapps", "shop.war")))
	assert.Contains(t, out, "SKIPPED")
	assert.Contains(t, out, "1 written, 1 skipped")
}

func TestDeploy_ChoosesTargetAndConfirms(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	ear := fixtureEAR(t, "commons", "war")

	out, err := executeCmd(t, "7\n1\nyes\n", "deploy", ear,
		"--catalina-home", home,
		"--conflict", "overwrite")
	require.NoError(t, err)

	assert.Contains(t, out, "0 -> "+filepath.Join(home, "lib"))
	assert.Contains(t, out, "1 -> "+filepath.Join(home, "shared"))
	assert.NotContains(t, out, "*.jar")
	assert.Equal(t, "commons", readFile(t, filepath.Join(home, "shared", "commons.jar")))
}

func TestDeploy_ConfirmDeclined(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	libDir := t.TempDir()
	ear := fixtureEAR(t, "commons", "war")

	_, err := executeCmd(t, "no\n", "deploy", ear,
		"--catalina-home", home,
		"--library-target", libDir,
		"--conflict", "skip")
	require.Error(t, err)
	assert.True(t, errors.Is(err, eerrors.ErrAborted))
	assert.Equal(t, ExitAborted, ExitCodeFromError(err))
	assert.NoFileExists(t, filepath.Join(libDir, "commons.jar"))
}

func TestDeploy_DryRunWritesNothing(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	libDir := t.TempDir()
	testutil.WriteFile(t, libDir, "commons.jar", "commons")
	ear := fixtureEAR(t, "commons", "war")

	out, err := executeCmd(t, "", "deploy", ear,
		"--catalina-home", home,
		"--library-target", libDir,
		"--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "unchanged")
	assert.Contains(t, out, "new")
	assert.NoFileExists(t, filepath.Join(home, "webapps", "shop.war"))
}

func TestDeploy_AskNeedsTerminal(t *testing.T) {
	isolateEnv(t)
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })

	ear := fixtureEAR(t, "commons", "war")
	_, err := executeCmd(t, "", "deploy", ear,
		"--catalina-home", tomcatHome(t),
		"--library-target", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestDeploy_AskOverwritesOnYes(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	libDir := t.TempDir()
	testutil.WriteFile(t, libDir, "commons.jar", "old")
	ear := fixtureEAR(t, "new", "war")

	out, err := executeCmd(t, "y\n", "deploy", ear,
		"--catalina-home", home,
		"--library-target", libDir,
		"--conflict", "ask",
		"--yes")
	require.NoError(t, err)

	assert.Contains(t, out, "File commons.jar already exists and differs, overwrite?")
	assert.Equal(t, "new", readFile(t, filepath.Join(libDir, "commons.jar")))
}

func TestDeploy_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		wantCode int
	}{
		{
			name: "archive not found",
			args: func(t *testing.T) []string {
				return []string{"deploy", filepath.Join(t.TempDir(), "missing.ear"), "--yes"}
			},
			wantCode: ExitArchiveError,
		},
		{
			name: "catalina home unset",
			args: func(t *testing.T) []string {
				return []string{"deploy", fixtureEAR(t, "a", "b"), "--yes", "--conflict", "skip"}
			},
			wantCode: ExitValidationError,
		},
		{
			name: "unknown conflict mode",
			args: func(t *testing.T) []string {
				return []string{"deploy", fixtureEAR(t, "a", "b"), "--yes",
					"--catalina-home", t.TempDir(), "--conflict", "sometimes"}
			},
			wantCode: ExitValidationError,
		},
		{
			name: "catalina.properties missing",
			args: func(t *testing.T) []string {
				return []string{"deploy", fixtureEAR(t, "a", "b"), "--yes",
					"--catalina-home", t.TempDir(), "--conflict", "skip"}
			},
			wantCode: ExitNotFound,
		},
		{
			name: "missing web module",
			args: func(t *testing.T) []string {
				desc := testutil.ApplicationXML("lib/",
					[]testutil.WebModule{{ID: "w", URI: "gone.war", ContextRoot: "/gone"}})
				ear := testutil.BuildEAR(t, t.TempDir(), desc)
				return []string{"deploy", ear, "--yes"}
			},
			wantCode: ExitArchiveError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			_, err := executeCmd(t, "", tt.args(t)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ExitCodeFromError(err))
		})
	}
}

func TestDeploy_EnvironmentSuppliesCatalinaHome(t *testing.T) {
	isolateEnv(t)
	home := tomcatHome(t)
	t.Setenv("CATALINA_HOME", home)
	libDir := t.TempDir()
	ear := fixtureEAR(t, "commons", "war")

	_, err := executeCmd(t, "", "deploy", ear,
		"--library-target", libDir, "--conflict", "overwrite", "--yes")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "webapps", "shop.war"))
}

func TestDeploy_ConfigFileSuppliesDefaults(t *testing.T) {
	home := isolateEnv(t)
	tomcat := tomcatHome(t)
	libDir := t.TempDir()
	testutil.WriteFile(t, home, filepath.Join(".eardeploy", "config.yaml"),
		"catalina:\n  home: "+tomcat+"\n"+
			"deploy:\n  conflict: overwrite\n  libraryTarget: "+libDir+"\n")
	ear := fixtureEAR(t, "commons", "war")

	_, err := executeCmd(t, "", "deploy", ear, "--yes")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(libDir, "commons.jar"))
	assert.FileExists(t, filepath.Join(tomcat, "webapps", "shop.war"))
}
