package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eerrors "github.com/eardeploy/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil error returns success", err: nil, wantCode: ExitSuccess},
		{name: "corrupt archive", err: eerrors.ErrCorruptArchive, wantCode: ExitArchiveError},
		{name: "version", err: eerrors.NewVersionError("1.4", "5"), wantCode: ExitArchiveError},
		{name: "structure", err: eerrors.NewStructureError("web module without uri", "web-uri", ""), wantCode: ExitArchiveError},
		{name: "missing member", err: eerrors.NewMissingMemberError("app.ear", "shop.war"), wantCode: ExitArchiveError},
		{name: "unsupported module", err: eerrors.NewUnsupportedModuleError("ejb"), wantCode: ExitExtractionError},
		{name: "extraction", err: eerrors.NewExtractionError("/tmp/a.jar", errors.New("disk full")), wantCode: ExitExtractionError},
		{name: "end of input", err: eerrors.NewEndOfInputError("a=b\\"), wantCode: ExitPropertiesError},
		{name: "malformed line", err: eerrors.NewMalformedLineError("garbage", '='), wantCode: ExitPropertiesError},
		{name: "validation", err: eerrors.ErrValidation, wantCode: ExitValidationError},
		{name: "wrapped validation", err: eerrors.Wrap(eerrors.ErrValidation, "bad flag"), wantCode: ExitValidationError},
		{name: "not found", err: eerrors.ErrNotFound, wantCode: ExitNotFound},
		{name: "permission", err: eerrors.ErrPermission, wantCode: ExitPermissionDenied},
		{name: "aborted", err: eerrors.Wrap(eerrors.ErrAborted, "declined"), wantCode: ExitAborted},
		{name: "explicit exit error", err: NewExitError(errors.New("x"), 42), wantCode: 42},
		{name: "wrapped exit error", err: fmt.Errorf("outer: %w", NewExitError(errors.New("x"), 3)), wantCode: 3},
		{name: "unknown error returns general error", err: errors.New("unknown error"), wantCode: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitSuccess, "Success"},
		{ExitGeneralError, "General Error"},
		{ExitArchiveError, "Archive Error"},
		{ExitExtractionError, "Extraction Error"},
		{ExitPropertiesError, "Properties Error"},
		{ExitValidationError, "Validation Error"},
		{ExitNotFound, "Not Found"},
		{ExitPermissionDenied, "Permission Denied"},
		{ExitAborted, "Aborted"},
		{99, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeName(tt.code))
		})
	}
}

func TestExitError(t *testing.T) {
	inner := eerrors.ErrNotFound
	err := NewExitError(inner, ExitNotFound)

	assert.Equal(t, inner.Error(), err.Error())
	assert.True(t, errors.Is(err, eerrors.ErrNotFound))
	assert.False(t, err.Printed)
}

func TestExitWith(t *testing.T) {
	assert.NoError(t, exitWith(nil))

	err := exitWith(eerrors.ErrPermission)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitPermissionDenied, exitErr.Code)

	explicit := NewExitError(errors.New("x"), 9)
	assert.Same(t, explicit, exitWith(explicit))

	p := printed(eerrors.ErrExtraction)
	require.True(t, errors.As(p, &exitErr))
	assert.True(t, exitErr.Printed)
	assert.Equal(t, ExitExtractionError, exitErr.Code)
}
