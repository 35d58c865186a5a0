// Package rename implements the batch renaming pipeline: argument parsing,
// name transformation, collision probing and the per-file rename loop.
package rename

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Mode selects the renaming strategy for a run.
type Mode int

const (
	SequentialRename Mode = iota
	Uppercase
	Lowercase
	FirstLetterUppercase
	FirstLetterLowercase
)

var modeNames = map[Mode]string{
	SequentialRename:     "sequential",
	Uppercase:            "uppercase",
	Lowercase:            "lowercase",
	FirstLetterUppercase: "first-letter-uppercase",
	FirstLetterLowercase: "first-letter-lowercase",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Banner returns the line announcing the mode before processing begins.
func (m Mode) Banner(prefix string) string {
	switch m {
	case SequentialRename:
		return fmt.Sprintf("Renaming files to: `%s_xx`", prefix)
	case Uppercase:
		return "Renaming files to uppercase"
	case Lowercase:
		return "Renaming files to lowercase"
	case FirstLetterUppercase:
		return "Renaming files first letter to uppercase"
	case FirstLetterLowercase:
		return "Renaming files first letter to lowercase"
	}
	return ""
}

// Config is the immutable run configuration built from the command line.
type Config struct {
	Dir    string
	Prefix string // used by SequentialRename only
	Mode   Mode
}

// Validate validates the run configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.In(
			SequentialRename, Uppercase, Lowercase, FirstLetterUppercase, FirstLetterLowercase,
		)),
	)
}
