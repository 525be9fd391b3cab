// Package testutil provides test helpers for building EAR fixtures.
package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Entry is a single file placed in a test archive.
type Entry struct {
	Name    string
	Content string
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// BuildZip writes entries into a new zip file at dir/name and returns its path.
// Directory entries are created for names ending in "/".
func BuildZip(t *testing.T, dir, name string, entries ...Entry) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate})
		if err != nil {
			t.Fatalf("failed to add %s: %v", e.Name, err)
		}
		if strings.HasSuffix(e.Name, "/") {
			continue
		}
		if _, err := w.Write([]byte(e.Content)); err != nil {
			t.Fatalf("failed to write %s: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish %s: %v", path, err)
	}
	return path
}

// BuildEAR writes an EAR with the given descriptor and extra entries.
func BuildEAR(t *testing.T, dir, descriptor string, entries ...Entry) string {
	t.Helper()
	all := append([]Entry{{Name: "META-INF/application.xml", Content: descriptor}}, entries...)
	return BuildZip(t, dir, "app.ear", all...)
}

// WebModule describes a <web> element for ApplicationXML.
type WebModule struct {
	ID          string
	URI         string
	ContextRoot string
}

// ApplicationXML renders a version 6 descriptor with the given library
// directory, web modules and generic module tags.
func ApplicationXML(libDir string, webs []WebModule, generic ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<application version="6">` + "\n")
	b.WriteString("  <display-name>test-ear</display-name>\n")
	if libDir != "" {
		fmt.Fprintf(&b, "  <library-directory>%s</library-directory>\n", libDir)
	}
	b.WriteString("  <module>\n")
	for _, w := range webs {
		fmt.Fprintf(&b, "    <web id=%q>\n      <web-uri>%s</web-uri>\n      <context-root>%s</context-root>\n    </web>\n",
			w.ID, w.URI, w.ContextRoot)
	}
	for _, g := range generic {
		fmt.Fprintf(&b, "    <%s>%s.jar</%s>\n", g, g, g)
	}
	b.WriteString("  </module>\n")
	b.WriteString("</application>\n")
	return b.String()
}

// CorruptEntry flips a byte inside the stored data of the named entry so its
// CRC-32 no longer matches. The entry must be written with zip.Store.
func CorruptEntry(t *testing.T, path, name string) {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	var offset int64 = -1
	for _, f := range r.File {
		if f.Name == name {
			offset, err = f.DataOffset()
			if err != nil {
				t.Fatalf("failed to locate %s: %v", name, err)
			}
		}
	}
	_ = r.Close()
	if offset < 0 {
		t.Fatalf("entry %s not found in %s", name, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	data[offset] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to rewrite %s: %v", path, err)
	}
}

// BuildStoredZip is BuildZip without compression, so CorruptEntry can
// modify entry bytes in place.
func BuildStoredZip(t *testing.T, dir, name string, entries ...Entry) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Store})
		if err != nil {
			t.Fatalf("failed to add %s: %v", e.Name, err)
		}
		if _, err := w.Write([]byte(e.Content)); err != nil {
			t.Fatalf("failed to write %s: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish %s: %v", path, err)
	}
	return path
}
