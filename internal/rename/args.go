package rename

import (
	"fmt"

	"github.com/starford/brf/internal/apperr"
)

// Usage is printed when the argument count is wrong.
const Usage = "Invalid number of arguments. " +
	"Usage: `brf [dir_path] [file_name | --uppercase | -u | --lowercase | -l | " +
	"--first-letter-uppercase | -U | --first-letter-lowercase | -L]`. " +
	"Example: `brf ./files img`"

var modeTokens = map[string]Mode{
	"--uppercase":              Uppercase,
	"-u":                       Uppercase,
	"--lowercase":              Lowercase,
	"-l":                       Lowercase,
	"--first-letter-uppercase": FirstLetterUppercase,
	"-U":                       FirstLetterUppercase,
	"--first-letter-lowercase": FirstLetterLowercase,
	"-L":                       FirstLetterLowercase,
}

// ParseArgs builds a Config from the positional arguments, program name
// excluded. The second argument selects a mode when it matches a mode token
// exactly; anything else is taken as the prefix for sequential renaming.
func ParseArgs(args []string) (Config, error) {
	if len(args) != 2 {
		return Config{}, fmt.Errorf("rename: want 2 arguments, got %d: %w", len(args), apperr.ErrUsage)
	}
	cfg := Config{Dir: args[0]}
	if m, ok := modeTokens[args[1]]; ok {
		cfg.Mode = m
		return cfg, nil
	}
	cfg.Prefix = args[1]
	cfg.Mode = SequentialRename
	return cfg, nil
}
