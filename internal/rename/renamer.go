package rename

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/starford/brf/internal/checksum"
	"github.com/starford/brf/internal/models"
	"github.com/starford/brf/internal/storage"
)

// Recorder receives the outcome of every rename attempt.
type Recorder interface {
	Record(ctx context.Context, o models.Outcome) error
}

// Summary counts the outcomes of a run.
type Summary struct {
	Renamed int
	Failed  int
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithMaxProbes caps the collision probe loop; zero leaves it unbounded.
func WithMaxProbes(n int) Option {
	return func(r *Renamer) {
		r.maxProbes = n
	}
}

// WithRecorder sends every outcome to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Renamer) {
		r.recorder = rec
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renamer) {
		r.logger = l
	}
}

// Renamer processes the files of one directory, one at a time, in listing
// order.
type Renamer struct {
	store     storage.Provider
	cfg       Config
	out       io.Writer
	logger    *slog.Logger
	recorder  Recorder
	maxProbes int
}

// NewRenamer creates a renamer writing console lines to out.
func NewRenamer(store storage.Provider, cfg Config, out io.Writer, opts ...Option) *Renamer {
	r := &Renamer{
		store:  store,
		cfg:    cfg,
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run lists the directory and renames every regular file in it. Per-file
// failures are reported and skipped; only a listing error stops the run.
func (r *Renamer) Run(ctx context.Context) (Summary, error) {
	entries, err := r.store.List()
	if err != nil {
		return Summary{}, err
	}

	fmt.Fprintln(r.out, r.cfg.Mode.Banner(r.cfg.Prefix))
	r.logger.Info("rename: started",
		slog.String("dir", r.store.Root()),
		slog.String("mode", r.cfg.Mode.String()),
		slog.Int("files", len(entries)))

	resolver := NewResolver(r.store, r.maxProbes)

	var sum Summary
	counter := 0
	for seq, e := range entries {
		var o models.Outcome
		o, counter = r.renameOne(resolver, seq, e, counter)
		if o.Failed() {
			sum.Failed++
			fmt.Fprintf(r.out, "Renaming file failed! %s: %v\n", e.Name, o.Err)
			r.logger.Warn("rename: failed",
				slog.String("name", e.Name),
				slog.String("error", o.Err.Error()))
		} else {
			sum.Renamed++
			r.logger.Debug("rename: renamed",
				slog.String("old", o.OldName),
				slog.String("new", o.NewName))
		}
		r.record(ctx, o)
		counter++
	}

	r.logger.Info("rename: finished",
		slog.Int("renamed", sum.Renamed),
		slog.Int("failed", sum.Failed))
	return sum, nil
}

// renameOne computes the new name for e and renames it. It returns the
// counter value in effect after collision probing.
func (r *Renamer) renameOne(resolver *Resolver, seq int, e models.FileEntry, counter int) (models.Outcome, int) {
	o := models.Outcome{Seq: seq, OldName: e.Name, Status: models.StatusFailed}

	stem, ext := SplitName(e.Name)
	if r.cfg.Mode == SequentialRename {
		name, n, err := resolver.Resolve(r.cfg.Prefix, ext, counter)
		counter = n
		if err != nil {
			o.Err = err
			return o, counter
		}
		o.NewName = name
	} else {
		o.NewName = Transform(r.cfg.Mode, stem) + ext
	}

	if err := r.store.Rename(e.Name, o.NewName); err != nil {
		o.Err = err
		return o, counter
	}
	o.Status = models.StatusRenamed
	return o, counter
}

func (r *Renamer) record(ctx context.Context, o models.Outcome) {
	if r.recorder == nil {
		return
	}
	name := o.OldName
	if !o.Failed() {
		name = o.NewName
	}
	if rc, err := r.store.Open(name); err == nil {
		if sum, err := checksum.SumReader(rc); err == nil {
			o.Checksum = sum
		}
		_ = rc.Close()
	}
	if err := r.recorder.Record(ctx, o); err != nil {
		r.logger.Warn("rename: journal record failed",
			slog.String("name", o.OldName),
			slog.String("error", err.Error()))
	}
}
