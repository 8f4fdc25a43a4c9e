// Package osfs implements the core.FileSystem port using the os package.
package osfs

import (
	"context"
	"io/fs"
	"os"
)

// FileSystem is the OS-backed implementation of core.FileSystem.
// It is stateless; the zero value is usable.
type FileSystem struct{}

// New creates a new OS filesystem adapter.
func New() *FileSystem {
	return &FileSystem{}
}

// Stat returns the mode of the entry at name.
// The ctx check is the suspension point for this call boundary.
func (f *FileSystem) Stat(ctx context.Context, name string) (fs.FileMode, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	info, err := os.Stat(name)
	if err != nil {
		return 0, err
	}
	return info.Mode(), nil
}

// ReadFile returns the full contents of the file at name.
func (f *FileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(name)
}

// ComponentType implements introspection.Component.
func (f *FileSystem) ComponentType() string {
	return "osfs"
}
