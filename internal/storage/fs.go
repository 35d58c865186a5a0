package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/brf/internal/apperr"
	"github.com/starford/brf/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the target directory
}

// NewFS creates a new FS provider rooted at the given directory.
// Any failure to resolve root as a directory is reported as
// apperr.ErrNotDirectory.
func NewFS(root string) (*FS, error) {
	if root == "" {
		return nil, fmt.Errorf("storage: empty root: %w", apperr.ErrNotDirectory)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w: %w", apperr.ErrNotDirectory, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w: %w", apperr.ErrNotDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: %s: %w", abs, apperr.ErrNotDirectory)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute directory path.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a leaf name against the root. Names that carry a
// directory component or escape the root are rejected: renames never leave
// the directory.
func (f *FS) safePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("storage: empty name")
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("storage: not a leaf name: %s", name)
	}
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", name)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes directory: %s", name)
	}
	return abs, nil
}

// List reads the directory once, in the order the file system yields
// entries, and keeps regular files only. Entries that cannot be read are
// skipped; an entry whose metadata cannot be read fails the whole listing.
func (f *FS) List() ([]models.FileEntry, error) {
	dir, err := os.Open(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w: %w", f.root, apperr.ErrNotDirectory, err)
	}
	defer dir.Close()

	// ReadDir(-1) keeps whatever it read before an error.
	entries, _ := dir.ReadDir(-1)

	out := make([]models.FileEntry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("storage: stat %s: %w: %w", e.Name(), apperr.ErrMetadata, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		out = append(out, models.FileEntry{Name: e.Name()})
	}
	return out, nil
}

// Exists reports whether an entry of any type is present at name.
func (f *FS) Exists(name string) (bool, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return false, err
	}
	_, err = os.Lstat(abs)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("storage: stat %s: %w", name, err)
	}
}

// Rename renames a file within the directory. Renaming onto an existing
// entry fails with apperr.ErrAlreadyExists unless both names refer to the
// same file (a case-only rename on a case-insensitive file system).
func (f *FS) Rename(oldName, newName string) error {
	absOld, err := f.safePath(oldName)
	if err != nil {
		return err
	}
	absNew, err := f.safePath(newName)
	if err != nil {
		return err
	}
	if absOld != absNew {
		if dst, err := os.Lstat(absNew); err == nil {
			src, srcErr := os.Lstat(absOld)
			if srcErr != nil || !os.SameFile(src, dst) {
				return fmt.Errorf("storage: rename to %s: %w", newName, apperr.ErrAlreadyExists)
			}
		}
	}
	if err := os.Rename(absOld, absNew); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}

// Open opens a file in the directory for reading.
func (f *FS) Open(name string) (io.ReadCloser, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", name, err)
	}
	return file, nil
}
