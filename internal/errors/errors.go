// Package errors provides the error taxonomy for eardeploy.
//
// Every failure the core can produce is identified by a sentinel error
// (ErrVersion, ErrMissingMember, ...). Sentinels are wrapped in a DetailError
// that carries the user-facing description; callers classify failures with
// errors.Is against the sentinel.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path, optionally with an in-archive entry (optional).
	Location string

	// Field is the descriptor element or properties key involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewCorruptArchiveError reports archive entries that failed the CRC self-check.
func NewCorruptArchiveError(archive string, bad []string, cause error) error {
	ctx := map[string]string{}
	if len(bad) > 0 {
		ctx["entries"] = strings.Join(bad, ", ")
	}
	if cause != nil {
		ctx["cause"] = cause.Error()
	}
	return &DetailError{
		Type:     "corrupt archive",
		Message:  "archive failed its integrity check",
		Location: archive,
		Context:  ctx,
		Hint:     "Rebuild or re-download the EAR file.",
		Cause:    ErrCorruptArchive,
	}
}

// NewVersionError reports a descriptor whose version attribute is not supported.
func NewVersionError(found, want string) error {
	return &DetailError{
		Type:    "unsupported version",
		Message: fmt.Sprintf("application version needs to be %q, found %q", want, found),
		Field:   "application@version",
		Cause:   ErrVersion,
	}
}

// NewStructureError reports a malformed descriptor or archive layout.
func NewStructureError(message, field, hint string) error {
	return &DetailError{
		Type:    "invalid structure",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrStructure,
	}
}

// NewMissingMemberError reports a module uri that has no archive entry.
func NewMissingMemberError(archive, uri string) error {
	return &DetailError{
		Type:     "missing member",
		Message:  fmt.Sprintf("%s not found in EAR", uri),
		Location: archive,
		Context:  map[string]string{"uri": uri},
		Cause:    ErrMissingMember,
	}
}

// NewUnsupportedModuleError reports an extraction request for a module type
// the engine does not know how to deploy.
func NewUnsupportedModuleError(moduleType string) error {
	return &DetailError{
		Type:    "unsupported module",
		Message: fmt.Sprintf("don't know how to handle %q module", moduleType),
		Field:   moduleType,
		Cause:   ErrUnsupportedModule,
	}
}

// NewExtractionError reports an I/O failure while writing target.
func NewExtractionError(target string, cause error) error {
	ctx := map[string]string{}
	if cause != nil {
		ctx["cause"] = cause.Error()
	}
	return &DetailError{
		Type:     "extraction failed",
		Message:  "could not write archive member",
		Location: target,
		Context:  ctx,
		Cause:    ErrExtraction,
	}
}

// NewEndOfInputError reports a dangling continuation and the fragment it left.
func NewEndOfInputError(fragment string) error {
	return &DetailError{
		Type:    "unexpected end of input",
		Message: "continuation line at end of input",
		Context: map[string]string{"fragment": fragment},
		Cause:   ErrEndOfInput,
	}
}

// NewMalformedLineError reports a logical properties line missing the assignment character.
func NewMalformedLineError(line string, assign rune) error {
	return &DetailError{
		Type:    "malformed line",
		Message: fmt.Sprintf("line has no %q assignment", assign),
		Context: map[string]string{"line": line},
		Cause:   ErrMalformedLine,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "permission denied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrPermission,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
