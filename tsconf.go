package tsconf

import (
	"context"
	"log/slog"

	"github.com/aretw0/tsconf/internal/platform"
	"github.com/aretw0/tsconf/pkg/adapters/osfs"
	"github.com/aretw0/tsconf/pkg/core"
	"github.com/aretw0/tsconf/pkg/expand"
	"github.com/aretw0/tsconf/pkg/parser"
	"github.com/aretw0/tsconf/pkg/typed"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Result pairs the resolved configuration path with the parsed document.
type Result = core.Result

// Event represents a change to a watched configuration file.
type Event = core.Event

// EventType represents the type of change observed on a watched file.
type EventType = core.EventType

const (
	EventReload = core.EventReload
	EventRemove = core.EventRemove
)

// FileSystem is the port for filesystem access; see WithFileSystem.
type FileSystem = core.FileSystem

// Loader composes path resolution and document parsing.
type Loader = platform.Loader

// Watcher follows a configuration file and reports reloads.
type Watcher = osfs.Watcher

// TypedResult is a public alias for the typed load result.
type TypedResult[T any] = typed.Result[T]

// ErrNotFound reports that an explicit argument did not resolve to a usable file.
var ErrNotFound = core.ErrNotFound

// DefaultMarkerName is the filename searched for during directory ascent.
const DefaultMarkerName = core.DefaultMarkerName

// --- Configuration ---

// Option defines a functional option for configuring a Loader.
type Option = platform.Option

// WithMarkerName sets the default configuration filename (e.g. "jsconfig.json").
func WithMarkerName(name string) Option {
	return platform.WithMarkerName(name)
}

// WithLogger sets the logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFileSystem allows injecting a custom filesystem adapter.
func WithFileSystem(fsys core.FileSystem) Option {
	return platform.WithFileSystem(fsys)
}

// WithStrict enables strict number parsing (json.Number) in parsed documents.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// --- Factory ---

// New creates a new Loader.
func New(opts ...Option) *Loader {
	return platform.NewLoader(opts...)
}

// --- Operations ---

// Parse runs the pure sanitize+parse pipeline on contents. No I/O happens;
// a blank document yields an empty object.
func Parse(contents string) (any, error) {
	return parser.Parse(contents)
}

// Find looks upwards from dir for the marker file. An empty path with a nil
// error means the ascent reached the filesystem root without a match.
func Find(ctx context.Context, dir string, opts ...Option) (string, error) {
	return New(opts...).Find(ctx, dir)
}

// Resolve locates the configuration file for dir, optionally forced to the
// explicit filename arg ("" delegates to Find).
func Resolve(ctx context.Context, dir, arg string, opts ...Option) (string, error) {
	return New(opts...).Resolve(ctx, dir, arg)
}

// Load finds, reads, and parses the configuration for dir. When nothing is
// found by the no-argument ascent, the Result carries an empty Path and the
// default document.
func Load(ctx context.Context, dir, arg string, opts ...Option) (Result, error) {
	return New(opts...).Load(ctx, dir, arg)
}

// ReadFile reads and parses a known configuration path.
func ReadFile(ctx context.Context, path string, opts ...Option) (any, error) {
	return New(opts...).ReadFile(ctx, path)
}

// LoadTyped is Load followed by a generic decode onto T.
func LoadTyped[T any](ctx context.Context, dir, arg string, opts ...Option) (TypedResult[T], error) {
	res, err := Load(ctx, dir, arg, opts...)
	if err != nil {
		return TypedResult[T]{}, err
	}

	config, err := typed.Decode[T](res.Config)
	if err != nil {
		return TypedResult[T]{}, err
	}

	return TypedResult[T]{Path: res.Path, Config: config}, nil
}

// Async delivers the outcome of a background operation.
type Async[T any] = platform.Async[T]

// LoadAsync is the non-blocking variant of Load; the single result arrives
// on the returned channel.
func LoadAsync(ctx context.Context, dir, arg string, opts ...Option) <-chan Async[Result] {
	return New(opts...).LoadAsync(ctx, dir, arg)
}

// ResolveAsync is the non-blocking variant of Resolve.
func ResolveAsync(ctx context.Context, dir, arg string, opts ...Option) <-chan Async[string] {
	return New(opts...).ResolveAsync(ctx, dir, arg)
}

// Files expands the files/include/exclude members of a parsed document into
// the selected file list, relative to rootDir.
func Files(rootDir string, config any) ([]string, error) {
	return expand.Files(rootDir, config)
}

// Watch creates and starts a watcher on the configuration file at path.
// Events are delivered on w.Events() until ctx is cancelled or Stop is
// called.
func Watch(ctx context.Context, path string, opts ...Option) (*Watcher, error) {
	l := platform.NewLoader(opts...)
	w := osfs.NewWatcher(path, l.Strict(), l.Logger())
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}
