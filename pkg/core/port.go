package core

import (
	"context"
	"io/fs"
)

// FileSystem defines the contract for the filesystem access the loader needs.
// Adhering to this interface keeps the resolution and parsing logic
// independent of the underlying storage (OS filesystem, in-memory fixture,
// remote mount). Implementations must honor ctx at each call boundary; these
// are the only points where a load suspends.
type FileSystem interface {
	// Stat returns the mode of the entry at name.
	Stat(ctx context.Context, name string) (fs.FileMode, error)

	// ReadFile returns the full contents of the file at name.
	ReadFile(ctx context.Context, name string) ([]byte, error)
}
