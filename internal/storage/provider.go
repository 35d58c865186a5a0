// Package storage defines the target-directory file-system abstraction.
package storage

import (
	"io"

	"github.com/starford/brf/internal/models"
)

// Provider is the interface for operations on the target directory.
// Names are leaf names relative to the directory root.
type Provider interface {
	// Root returns the absolute path of the directory.
	Root() string
	// List returns every regular file directly inside the directory.
	List() ([]models.FileEntry, error)
	// Exists reports whether any entry is present at name.
	Exists(name string) (bool, error)
	// Rename moves oldName to newName without replacing another file.
	Rename(oldName, newName string) error
	// Open opens name for reading.
	Open(name string) (io.ReadCloser, error)
}
