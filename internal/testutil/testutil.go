// Package testutil provides shared test helpers for setting up target
// directories and journals.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/starford/brf/internal/journal"
)

// TestDir creates a temporary directory holding one file per name. Each
// file's content is its original name.
func TestDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// Names returns the sorted entry names of dir.
func Names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// Content returns the content of dir/name.
func Content(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// TestJournal creates a temporary journal database that is automatically closed.
func TestJournal(t *testing.T) (*journal.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brf-test.db")
	db, err := journal.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}
