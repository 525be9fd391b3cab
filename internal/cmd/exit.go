// Package cmd provides command implementations for the eardeploy CLI.
package cmd

// Exit codes, one per error family.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitArchiveError indicates the archive or its descriptor is unusable.
	ExitArchiveError = 2

	// ExitExtractionError indicates a member could not be deployed.
	ExitExtractionError = 3

	// ExitPropertiesError indicates a properties file could not be parsed.
	ExitPropertiesError = 4

	// ExitValidationError indicates invalid flags or configuration.
	ExitValidationError = 5

	// ExitNotFound indicates a required file or setting is missing.
	ExitNotFound = 6

	// ExitPermissionDenied indicates a filesystem permission failure.
	ExitPermissionDenied = 7

	// ExitAborted indicates the user declined to continue.
	ExitAborted = 8
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitArchiveError:
		return "Archive Error"
	case ExitExtractionError:
		return "Extraction Error"
	case ExitPropertiesError:
		return "Properties Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
