package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eerrors "github.com/eardeploy/cli/internal/errors"
	"github.com/eardeploy/cli/internal/testutil"
)

func TestPlan(t *testing.T) {
	dest := t.TempDir()
	testutil.WriteFile(t, dest, "same.jar", "same")
	testutil.WriteFile(t, dest, "diff.jar", "old")
	engine := New(memSource{})

	tests := []struct {
		name string
		m    string
		body string
		want Status
	}{
		{"absent", "lib/new.jar", "x", StatusNew},
		{"identical", "lib/same.jar", "same", StatusUnchanged},
		{"different", "lib/diff.jar", "new", StatusChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Plan(dest, member(tt.m, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "old", readFile(t, dest+"/diff.jar"), "plan never writes")
}

func TestParseConflictMode(t *testing.T) {
	tests := []struct {
		in          string
		want        string
		interactive bool
	}{
		{"ask", "ask", true},
		{"", "ask", true},
		{"Overwrite", "overwrite", false},
		{"always", "overwrite", false},
		{"skip", "skip", false},
		{" never ", "skip", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode, err := ParseConflictMode(tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode.String())
			assert.Equal(t, tt.interactive, mode.Interactive())
		})
	}

	_, err := ParseConflictMode("sometimes", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, eerrors.ErrValidation))
}
