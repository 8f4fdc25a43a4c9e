package platform

import (
	"log/slog"

	"github.com/aretw0/tsconf/pkg/core"
)

// options holds the internal configuration for a Loader.
type options struct {
	fsys   core.FileSystem
	logger *slog.Logger
	marker string
	strict bool
}

// Option defines a functional option for configuring a Loader.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		marker: core.DefaultMarkerName,
	}
}

// WithMarkerName sets the filename searched for during directory ascent and
// appended when an explicit argument names a directory.
// Defaults to "tsconfig.json".
func WithMarkerName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.marker = name
		}
	}
}

// WithLogger sets the logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFileSystem allows injecting a custom filesystem adapter (e.g. a test
// fixture). If not provided, the OS adapter is used.
func WithFileSystem(fsys core.FileSystem) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithStrict enables strict number parsing (as json.Number) to preserve
// precision of large integers in the parsed document.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
