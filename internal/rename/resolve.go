package rename

import (
	"fmt"

	"github.com/starford/brf/internal/apperr"
)

// ExistenceChecker reports whether a name is already taken in the directory.
type ExistenceChecker interface {
	Exists(name string) (bool, error)
}

// Resolver finds a free sequential name by probing prefix_N+ext for
// increasing N. It keeps no state between calls; the caller owns the counter.
type Resolver struct {
	fs        ExistenceChecker
	maxProbes int // 0 means unbounded
}

// NewResolver creates a resolver. maxProbes caps the number of existence
// checks per file; zero leaves the probe loop unbounded.
func NewResolver(fs ExistenceChecker, maxProbes int) *Resolver {
	return &Resolver{fs: fs, maxProbes: maxProbes}
}

// Resolve returns the first free name starting at counter n, together with
// the counter value that produced it.
func (r *Resolver) Resolve(prefix, ext string, n int) (string, int, error) {
	for probes := 1; ; probes++ {
		name := SequentialName(prefix, n) + ext
		taken, err := r.fs.Exists(name)
		if err != nil {
			return "", n, fmt.Errorf("rename: probe %s: %w", name, err)
		}
		if !taken {
			return name, n, nil
		}
		if r.maxProbes > 0 && probes >= r.maxProbes {
			return "", n, fmt.Errorf("rename: %d probes from %s: %w", probes, prefix, apperr.ErrTooManyCollisions)
		}
		n++
	}
}
