package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// ZipEntry is one entry of a fixture archive. Entries are written in slice
// order so tests can rely on archive order.
type ZipEntry struct {
	// Name is the archive-internal path, forward-slash separated. A Name
	// ending in "/" produces a directory entry.
	Name string

	// Body is the file content; ignored for directory entries
	Body string
}

// WriteZip writes a zip archive with the given entries to path
func WriteZip(t *testing.T, path string, entries []ZipEntry) {
	t.Helper()

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture archive %s: %v", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := zip.NewWriter(file)
	for _, entry := range entries {
		w, err := writer.Create(entry.Name)
		if err != nil {
			t.Fatalf("adding entry %s: %v", entry.Name, err)
		}
		if _, err := w.Write([]byte(entry.Body)); err != nil {
			t.Fatalf("writing entry %s: %v", entry.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing fixture archive %s: %v", path, err)
	}
}

// TreeSnapshot returns every file path under root, relative to root and
// sorted lexically by the walk. Used to compare on-disk outcomes.
func TreeSnapshot(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}
