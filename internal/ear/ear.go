// Package ear indexes an Enterprise Archive.
//
// Open verifies the zip container, decodes META-INF/application.xml and binds
// every declared module to its archive entry. The resulting Archive is
// read-only; all bindings are computed once in Open.
package ear

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/eardeploy/cli/internal/descriptor"
	eerrors "github.com/eardeploy/cli/internal/errors"
)

// DescriptorPath is the fixed location of the deployment descriptor.
const DescriptorPath = "META-INF/application.xml"

// LibrarySuffix selects which entries under the library directory are libraries.
const LibrarySuffix = ".jar"

// checkBufferSize is the chunk size used when streaming entries for the CRC self-check.
const checkBufferSize = 32 * 1024

// ZipMember is an archive entry selected for deployment.
type ZipMember struct {
	// Filename is the full in-archive path.
	Filename string `json:"filename" yaml:"filename"`
	// Basename is the final path component, used as the extraction file name.
	Basename string `json:"basename" yaml:"basename"`
	// CRC32 is the checksum recorded in the archive's central directory.
	CRC32 uint32 `json:"crc32" yaml:"crc32"`
	// Size is the uncompressed size recorded by the archive.
	Size uint64 `json:"size" yaml:"size"`
}

func memberOf(f *zip.File) ZipMember {
	return ZipMember{
		Filename: f.Name,
		Basename: path.Base(f.Name),
		CRC32:    f.CRC32,
		Size:     f.UncompressedSize64,
	}
}

// String returns the in-archive path.
func (m ZipMember) String() string {
	return m.Filename
}

// Module is a declared module bound to its archive entry. Member is nil for
// modules that carry no uri.
type Module struct {
	descriptor.Module
	Member *ZipMember
}

// Web returns the web module declaration, or nil for other module types.
func (m Module) Web() *descriptor.WebModule {
	w, _ := m.Module.(*descriptor.WebModule)
	return w
}

// Archive is an opened and validated EAR.
type Archive struct {
	path      string
	reader    *zip.ReadCloser
	entries   map[string]*zip.File
	app       *descriptor.Application
	libraries []ZipMember
	modules   []Module
}

// Open opens the EAR at path and validates it. The returned Archive must be
// closed. On error no handle is left open.
func Open(path string) (a *Archive, err error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, eerrors.NewCorruptArchiveError(path, nil, err)
	}
	defer func() {
		if err != nil {
			_ = r.Close()
		}
	}()

	if bad := selfCheck(r.File); len(bad) > 0 {
		return nil, eerrors.NewCorruptArchiveError(path, bad, nil)
	}

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[f.Name] = f
	}

	app, err := readDescriptor(entries)
	if err != nil {
		var detail *eerrors.DetailError
		if errors.As(err, &detail) && detail.Location == "" {
			detail.Location = path + "!" + DescriptorPath
		}
		return nil, err
	}

	modules := make([]Module, 0, len(app.Modules))
	for _, m := range app.Modules {
		bound := Module{Module: m}
		_, web := m.(*descriptor.WebModule)
		if uri := m.URI(); uri != "" || web {
			f, ok := entries[uri]
			if !ok {
				return nil, eerrors.NewMissingMemberError(path, uri)
			}
			member := memberOf(f)
			bound.Member = &member
		}
		modules = append(modules, bound)
	}

	return &Archive{
		path:      path,
		reader:    r,
		entries:   entries,
		app:       app,
		libraries: selectLibraries(r.File, app.LibraryDirectory),
		modules:   modules,
	}, nil
}

// selfCheck reads every entry through the CRC-verifying reader and returns
// the names of the entries that fail.
func selfCheck(files []*zip.File) []string {
	var bad []string
	buf := make([]byte, checkBufferSize)
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := drain(f, buf); err != nil {
			bad = append(bad, f.Name)
		}
	}
	return bad
}

func drain(f *zip.File, buf []byte) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = io.CopyBuffer(io.Discard, rc, buf)
	return err
}

func readDescriptor(entries map[string]*zip.File) (*descriptor.Application, error) {
	f, ok := entries[DescriptorPath]
	if !ok {
		return nil, eerrors.NewStructureError(
			fmt.Sprintf("%s not found", DescriptorPath), "", "Is this an EAR file?")
	}
	rc, err := f.Open()
	if err != nil {
		return nil, eerrors.NewStructureError(
			fmt.Sprintf("opening %s: %v", DescriptorPath, err), "", "")
	}
	defer rc.Close()
	return descriptor.ParseReader(rc)
}

func selectLibraries(files []*zip.File, libDir string) []ZipMember {
	var libs []ZipMember
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if strings.HasPrefix(f.Name, libDir) && strings.HasSuffix(f.Name, LibrarySuffix) {
			libs = append(libs, memberOf(f))
		}
	}
	return libs
}

// Close releases the archive handle.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Path returns the file system path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Application returns the decoded descriptor.
func (a *Archive) Application() *descriptor.Application {
	return a.app
}

// Libraries returns the library members in archive order.
func (a *Archive) Libraries() []ZipMember {
	return append([]ZipMember(nil), a.libraries...)
}

// Modules returns the declared modules in descriptor order.
func (a *Archive) Modules() []Module {
	return append([]Module(nil), a.modules...)
}

// WebModules returns the bound web modules in descriptor order.
func (a *Archive) WebModules() []Module {
	var out []Module
	for _, m := range a.modules {
		if m.Web() != nil {
			out = append(out, m)
		}
	}
	return out
}

// Open returns a stream over the named entry's uncompressed bytes.
func (a *Archive) Open(filename string) (io.ReadCloser, error) {
	f, ok := a.entries[filename]
	if !ok {
		return nil, eerrors.NewMissingMemberError(a.path, filename)
	}
	return f.Open()
}
