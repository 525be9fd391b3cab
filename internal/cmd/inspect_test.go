package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eardeploy/cli/internal/ear"
)

func TestInspect_Table(t *testing.T) {
	isolateEnv(t)
	path := fixtureEAR(t, "commons", "war")

	out, err := executeCmd(t, "", "inspect", path)
	require.NoError(t, err)

	assert.Contains(t, out, "app.ear (test-ear)")
	assert.Contains(t, out, "version 6")
	assert.Contains(t, out, "lib/commons.jar")
	assert.Contains(t, out, "shop.war")
	assert.Contains(t, out, "CRC32")
}

func TestInspect_JSON(t *testing.T) {
	isolateEnv(t)
	path := fixtureEAR(t, "commons", "war")

	out, err := executeCmd(t, "", "inspect", path, "-o", "json")
	require.NoError(t, err)

	var man ear.Manifest
	require.NoError(t, json.Unmarshal([]byte(out), &man))
	assert.Equal(t, "6", man.Application.Version)
	require.Len(t, man.Libraries, 1)
	assert.Equal(t, "lib/commons.jar", man.Libraries[0].Filename)
	require.Len(t, man.Modules, 1)
	assert.Equal(t, "web", man.Modules[0].Type)
	assert.Equal(t, "/shop", man.Modules[0].ContextRoot)
}

func TestInspect_YAML(t *testing.T) {
	isolateEnv(t)
	out, err := executeCmd(t, "", "inspect", fixtureEAR(t, "c", "w"), "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "application:\n  version: \"6\"")
	assert.Contains(t, out, "filename: lib/commons.jar")
}

func TestInspect_InvalidFormat(t *testing.T) {
	isolateEnv(t)
	_, err := executeCmd(t, "", "inspect", fixtureEAR(t, "c", "w"), "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
