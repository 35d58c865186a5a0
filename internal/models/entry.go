// Package models defines the value types passed between the lister, the
// renamer and the journal.
package models

// FileEntry is a regular file found directly inside the target directory.
type FileEntry struct {
	Name string // leaf name, extension included
}

// Status is the result of one rename attempt.
type Status string

const (
	StatusRenamed Status = "renamed"
	StatusFailed  Status = "failed"
)

// Outcome describes one rename attempt within a run.
type Outcome struct {
	Seq      int
	OldName  string
	NewName  string // empty when no candidate was found
	Status   Status
	Err      error
	Checksum string
}

// Failed reports whether the attempt left the file untouched.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}
