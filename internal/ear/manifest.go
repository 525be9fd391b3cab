package ear

import "fmt"

// Manifest is a serialisable summary of an archive, used for reports and diffs.
type Manifest struct {
	Application ManifestApplication `json:"application" yaml:"application"`
	Modules     []ManifestModule    `json:"modules" yaml:"modules"`
	Libraries   []ManifestEntry     `json:"libraries" yaml:"libraries"`
}

// ManifestApplication holds the descriptor metadata.
type ManifestApplication struct {
	Version          string `json:"version" yaml:"version"`
	DisplayName      string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	LibraryDirectory string `json:"libraryDirectory" yaml:"libraryDirectory"`
}

// ManifestModule describes one declared module.
type ManifestModule struct {
	Type        string         `json:"type" yaml:"type"`
	ID          string         `json:"id,omitempty" yaml:"id,omitempty"`
	ContextRoot string         `json:"contextRoot,omitempty" yaml:"contextRoot,omitempty"`
	Entry       *ManifestEntry `json:"entry,omitempty" yaml:"entry,omitempty"`
}

// ManifestEntry describes an archive member.
type ManifestEntry struct {
	Filename string `json:"filename" yaml:"filename"`
	CRC32    string `json:"crc32" yaml:"crc32"`
	Size     uint64 `json:"size" yaml:"size"`
}

// FormatCRC renders a checksum the way the reports show it.
func FormatCRC(crc uint32) string {
	return fmt.Sprintf("%08x", crc)
}

func entryOf(m ZipMember) ManifestEntry {
	return ManifestEntry{Filename: m.Filename, CRC32: FormatCRC(m.CRC32), Size: m.Size}
}

// Manifest summarises the archive.
func (a *Archive) Manifest() Manifest {
	man := Manifest{
		Application: ManifestApplication{
			Version:          a.app.Version,
			DisplayName:      a.app.DisplayName,
			Description:      a.app.Description,
			LibraryDirectory: a.app.LibraryDirectory,
		},
		Modules:   make([]ManifestModule, 0, len(a.modules)),
		Libraries: make([]ManifestEntry, 0, len(a.libraries)),
	}

	for _, m := range a.modules {
		mm := ManifestModule{Type: m.Type()}
		if w := m.Web(); w != nil {
			mm.ID = w.ID
			mm.ContextRoot = w.ContextRoot
		}
		if m.Member != nil {
			e := entryOf(*m.Member)
			mm.Entry = &e
		}
		man.Modules = append(man.Modules, mm)
	}
	for _, l := range a.libraries {
		man.Libraries = append(man.Libraries, entryOf(l))
	}
	return man
}
