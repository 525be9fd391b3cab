package cmd

import (
	"errors"

	eerrors "github.com/eardeploy/cli/internal/errors"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
	// Printed is set when the command already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, eerrors.ErrCorruptArchive),
		errors.Is(err, eerrors.ErrVersion),
		errors.Is(err, eerrors.ErrStructure),
		errors.Is(err, eerrors.ErrMissingMember):
		return ExitArchiveError
	case errors.Is(err, eerrors.ErrUnsupportedModule),
		errors.Is(err, eerrors.ErrExtraction):
		return ExitExtractionError
	case errors.Is(err, eerrors.ErrEndOfInput),
		errors.Is(err, eerrors.ErrMalformedLine):
		return ExitPropertiesError
	case errors.Is(err, eerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, eerrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, eerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, eerrors.ErrAborted):
		return ExitAborted
	default:
		return ExitGeneralError
	}
}

// exitWith attaches the exit code matching err. ExitErrors pass through.
func exitWith(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return NewExitError(err, ExitCodeFromError(err))
}

// printed marks err as already reported.
func printed(err error) error {
	return &ExitError{Err: err, Code: ExitCodeFromError(err), Printed: true}
}
