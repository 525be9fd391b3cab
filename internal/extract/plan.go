package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eardeploy/cli/internal/ear"
	eerrors "github.com/eardeploy/cli/internal/errors"
)

// Status describes how a member relates to what is already deployed.
type Status string

const (
	// StatusNew means the target file does not exist yet.
	StatusNew Status = "new"
	// StatusUnchanged means the target exists with the same checksum.
	StatusUnchanged Status = "unchanged"
	// StatusChanged means the target exists with a different checksum.
	StatusChanged Status = "changed"
)

// Plan reports what Extract would find at destDir for m without writing anything.
func (e *Engine) Plan(destDir string, m ear.ZipMember) (Status, error) {
	target := filepath.Join(destDir, m.Basename)
	exists, err := fileExists(target)
	if err != nil {
		return "", eerrors.NewExtractionError(target, err)
	}
	if !exists {
		return StatusNew, nil
	}
	crc, err := FileCRC32(target)
	if err != nil {
		return "", eerrors.NewExtractionError(target, err)
	}
	if crc == m.CRC32 {
		return StatusUnchanged, nil
	}
	return StatusChanged, nil
}

// ConflictModes lists the names accepted by ParseConflictMode.
func ConflictModes() []string {
	return []string{"ask", "overwrite", "skip"}
}

// ParseConflictMode maps a mode name to a ConflictMode. decide is used for "ask".
func ParseConflictMode(name string, decide Decision) (ConflictMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ask", "":
		return Ask(decide), nil
	case "overwrite", "always":
		return Overwrite(), nil
	case "skip", "never":
		return Skip(), nil
	default:
		return ConflictMode{}, eerrors.NewValidationError(
			fmt.Sprintf("unknown conflict mode %q", name), "", "conflict",
			"Use one of: "+strings.Join(ConflictModes(), ", "))
	}
}

// Interactive reports whether the mode may call a Decision.
func (m ConflictMode) Interactive() bool {
	return m.kind == conflictAsk
}
