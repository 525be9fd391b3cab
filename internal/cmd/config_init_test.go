package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eardeploy/cli/internal/config"
)

func TestNewConfigInitCmd(t *testing.T) {
	cmd := NewConfigInitCmd()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	home := isolateEnv(t)

	out, err := executeCmd(t, "", "config", "init")
	require.NoError(t, err)

	configFile := filepath.Join(home, ".eardeploy", "config.yaml")
	assert.FileExists(t, configFile)
	assert.Contains(t, out, "Configuration initialized at "+configFile)

	cfg, err := config.NewLoader().Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConflictMode, cfg.Deploy.Conflict)
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	home := isolateEnv(t)

	_, err := executeCmd(t, "", "config", "init")
	require.NoError(t, err)

	dirInfo, err := os.Stat(filepath.Join(home, ".eardeploy"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(home, ".eardeploy", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	isolateEnv(t)

	_, err := executeCmd(t, "", "config", "init")
	require.NoError(t, err)

	_, err = executeCmd(t, "", "config", "init")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "--force")

	_, err = executeCmd(t, "", "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigInit_ConfigFlagPath(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "eardeploy.yaml")

	_, err := executeCmd(t, "", "config", "init", "--config", target)
	require.NoError(t, err)
	assert.FileExists(t, target)
}
