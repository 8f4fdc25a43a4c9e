package platform

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/tsconf/pkg/adapters/osfs"
	"github.com/aretw0/tsconf/pkg/core"
	"github.com/aretw0/tsconf/pkg/parser"
)

// Loader composes path resolution and document parsing over a FileSystem.
// It holds no mutable state; every operation is a pure function of its
// arguments plus the filesystem, so a single Loader is safe for concurrent
// use.
type Loader struct {
	fsys   core.FileSystem
	logger *slog.Logger
	marker string
	strict bool
}

// NewLoader creates a Loader from the given options.
func NewLoader(opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.fsys == nil {
		o.fsys = osfs.New()
	}

	return &Loader{
		fsys:   o.fsys,
		logger: o.logger,
		marker: o.marker,
		strict: o.strict,
	}
}

// Find looks upwards from dir for the marker file. It returns the absolute
// path of the first match, or "" when the ascent reaches the filesystem root
// without finding one. Absence is a normal outcome, not an error; the only
// errors are path resolution failures and context cancellation.
func (l *Loader) Find(ctx context.Context, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	d := abs
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := filepath.Join(d, l.marker)
		if mode, err := l.fsys.Stat(ctx, candidate); err == nil && mode.IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(d)
		if parent == d {
			// Reached filesystem root; normalization makes root its own
			// parent, which bounds the ascent.
			return "", nil
		}
		d = parent
	}
}

// Resolve locates the configuration file. With an empty arg it delegates to
// Find. Otherwise arg is resolved against dir: a regular file or FIFO wins
// as-is, a directory gets the marker filename appended, and anything else
// fails with core.ErrNotFound carrying the original argument.
func (l *Loader) Resolve(ctx context.Context, dir, arg string) (string, error) {
	if arg == "" {
		return l.Find(ctx, dir)
	}

	path := arg
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, arg)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	mode, err := l.fsys.Stat(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%q: %w", arg, core.ErrNotFound)
	}

	switch {
	case fileLike(mode):
		return path, nil
	case mode.IsDir():
		candidate := filepath.Join(path, l.marker)
		if m, err := l.fsys.Stat(ctx, candidate); err == nil && m.IsRegular() {
			return candidate, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
	}

	return "", fmt.Errorf("%q: %w", arg, core.ErrNotFound)
}

// fileLike reports whether mode describes an entry usable as a config file.
// Named pipes are accepted alongside regular files.
func fileLike(mode fs.FileMode) bool {
	return mode.IsRegular() || mode&fs.ModeNamedPipe != 0
}

// Load finds and parses the configuration. An explicit arg that does not
// resolve fails; an unsuccessful no-argument ascent yields the default
// document with an empty path.
func (l *Loader) Load(ctx context.Context, dir, arg string) (core.Result, error) {
	path, err := l.Resolve(ctx, dir, arg)
	if err != nil {
		return core.Result{}, err
	}

	if path == "" {
		if l.logger != nil {
			l.logger.Debug("no config file found, using default document", "dir", dir, "marker", l.marker)
		}
		return core.Result{Config: core.DefaultConfig()}, nil
	}

	config, err := l.ReadFile(ctx, path)
	if err != nil {
		return core.Result{}, err
	}

	if l.logger != nil {
		l.logger.Debug("config loaded", "path", path)
	}
	return core.Result{Path: path, Config: config}, nil
}

// ReadFile reads and parses a known configuration path. Read failures
// surface verbatim; they are I/O errors, not NotFound.
func (l *Loader) ReadFile(ctx context.Context, path string) (any, error) {
	data, err := l.fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return l.Parse(string(data))
}

// Parse runs the pure sanitize+parse pipeline with this loader's settings.
func (l *Loader) Parse(contents string) (any, error) {
	if l.strict {
		return parser.ParseStrict(contents)
	}
	return parser.Parse(contents)
}

// Marker returns the marker filename this loader searches for.
func (l *Loader) Marker() string {
	return l.marker
}

// Strict reports whether documents are parsed with json.Number decoding.
func (l *Loader) Strict() bool {
	return l.strict
}

// Logger returns the configured logger, possibly nil.
func (l *Loader) Logger() *slog.Logger {
	return l.logger
}
