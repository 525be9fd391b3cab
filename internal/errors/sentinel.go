package errors

import "errors"

// Sentinel errors for archive indexing.
var (
	// ErrCorruptArchive indicates the zip container failed its integrity self-check.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrVersion indicates an application descriptor with an unsupported version.
	ErrVersion = errors.New("unsupported descriptor version")

	// ErrStructure indicates a malformed descriptor or archive layout.
	ErrStructure = errors.New("invalid structure")

	// ErrMissingMember indicates a module uri with no matching archive entry.
	ErrMissingMember = errors.New("missing archive member")
)

// Sentinel errors for extraction.
var (
	// ErrUnsupportedModule indicates extraction was requested for a non-web module.
	ErrUnsupportedModule = errors.New("unsupported module")

	// ErrExtraction indicates an I/O failure while copying an archive entry.
	ErrExtraction = errors.New("extraction failed")
)

// Sentinel errors for properties parsing.
var (
	// ErrEndOfInput indicates a continuation line with nothing to continue into.
	ErrEndOfInput = errors.New("unexpected end of input")

	// ErrMalformedLine indicates a properties line without an assignment.
	ErrMalformedLine = errors.New("malformed line")
)

// Sentinel errors for CLI-level conditions.
var (
	// ErrValidation indicates invalid input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrAborted indicates the user declined to continue.
	ErrAborted = errors.New("aborted")
)
