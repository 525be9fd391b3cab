// Package extract copies archive members into deployment directories.
//
// An existing target is handled according to a ConflictMode: always
// overwrite, never overwrite, or ask a Decision with both CRC-32 checksums.
// The engine keeps no state between calls; re-running a deployment is
// idempotent because every call compares checksums afresh.
package extract

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eardeploy/cli/internal/ear"
	eerrors "github.com/eardeploy/cli/internal/errors"
)

const (
	defaultBufferSize = 32 * 1024
	defaultFileMode   = 0o644
	defaultDirMode    = 0o755
)

// Source opens archive entries by their in-archive path. *ear.Archive
// implements it.
type Source interface {
	Open(filename string) (io.ReadCloser, error)
}

// Decision decides whether an existing file should be replaced. It receives
// the target's base name and the checksums of the existing file and the
// incoming entry. Returning false keeps the existing file.
type Decision func(basename string, existing, incoming uint32) (bool, error)

type conflictKind int

const (
	conflictSkip conflictKind = iota
	conflictOverwrite
	conflictAsk
)

// ConflictMode selects how an existing target file is handled.
type ConflictMode struct {
	kind   conflictKind
	decide Decision
}

// Skip never replaces an existing file.
func Skip() ConflictMode {
	return ConflictMode{kind: conflictSkip}
}

// Overwrite always replaces an existing file.
func Overwrite() ConflictMode {
	return ConflictMode{kind: conflictOverwrite}
}

// Ask consults d for every existing file. A nil d keeps every existing file.
func Ask(d Decision) ConflictMode {
	return ConflictMode{kind: conflictAsk, decide: d}
}

// String returns the mode name as accepted by ParseConflictMode.
func (m ConflictMode) String() string {
	switch m.kind {
	case conflictOverwrite:
		return "overwrite"
	case conflictAsk:
		return "ask"
	default:
		return "skip"
	}
}

// Engine extracts members from a Source.
type Engine struct {
	src        Source
	bufferSize int
	fileMode   fs.FileMode
}

// Option configures an Engine.
type Option func(*Engine)

// WithBufferSize sets the copy chunk size.
func WithBufferSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.bufferSize = n
		}
	}
}

// WithFileMode sets the permissions of written files.
func WithFileMode(mode fs.FileMode) Option {
	return func(e *Engine) { e.fileMode = mode }
}

// New creates an Engine reading from src.
func New(src Source, opts ...Option) *Engine {
	e := &Engine{src: src, bufferSize: defaultBufferSize, fileMode: defaultFileMode}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLibrary extracts a library member into destDir.
func (e *Engine) ExtractLibrary(destDir string, m ear.ZipMember, mode ConflictMode) (bool, error) {
	return e.Extract(destDir, m, mode)
}

// ExtractModule extracts a web module's archive into destDir. Other module
// types are rejected with ErrUnsupportedModule.
func (e *Engine) ExtractModule(destDir string, m ear.Module, mode ConflictMode) (bool, error) {
	if m.Web() == nil || m.Member == nil {
		moduleType := "<nil>"
		if m.Module != nil {
			moduleType = m.Type()
		}
		return false, eerrors.NewUnsupportedModuleError(moduleType)
	}
	return e.Extract(destDir, *m.Member, mode)
}

// Extract copies m to destDir/m.Basename. It reports whether the file was
// written. A false result with a nil error means an existing file was kept.
func (e *Engine) Extract(destDir string, m ear.ZipMember, mode ConflictMode) (bool, error) {
	target := filepath.Join(destDir, m.Basename)

	exists, err := fileExists(target)
	if err != nil {
		return false, eerrors.NewExtractionError(target, err)
	}
	if exists {
		proceed, err := e.resolveConflict(target, m, mode)
		if err != nil || !proceed {
			return false, err
		}
	}

	if err := os.MkdirAll(destDir, defaultDirMode); err != nil {
		return false, eerrors.NewExtractionError(destDir, err)
	}
	if err := e.copyEntry(target, m.Filename); err != nil {
		return false, eerrors.NewExtractionError(target, err)
	}
	return true, nil
}

func (e *Engine) resolveConflict(target string, m ear.ZipMember, mode ConflictMode) (bool, error) {
	switch mode.kind {
	case conflictOverwrite:
		return true, nil
	case conflictAsk:
		if mode.decide == nil {
			return false, nil
		}
		existing, err := FileCRC32(target)
		if err != nil {
			return false, eerrors.NewExtractionError(target, err)
		}
		return mode.decide(m.Basename, existing, m.CRC32)
	default:
		return false, nil
	}
}

// copyEntry streams the entry into a temporary file next to target and
// renames it into place, so target is either the old or the complete new file.
func (e *Engine) copyEntry(target, filename string) (err error) {
	src, err := e.src.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.CopyBuffer(tmp, src, make([]byte, e.bufferSize)); err != nil {
		return fmt.Errorf("copying %s: %w", filename, err)
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(e.fileMode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// FileCRC32 computes the IEEE CRC-32 of the file at path in a single pass.
func FileCRC32(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err := io.CopyBuffer(h, f, make([]byte, defaultBufferSize)); err != nil {
		return 0, err
	}
	return h.Sum32(), nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}
