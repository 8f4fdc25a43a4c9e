package platform

import (
	"github.com/aretw0/introspection"
)

// LoaderState exposes internal state for observability.
type LoaderState struct {
	Marker     string `json:"marker"`
	Strict     bool   `json:"strict"`
	FileSystem string `json:"file_system"`
}

// State implements introspection.Introspectable.
func (l *Loader) State() any {
	fsType := "unknown"
	if l.fsys != nil {
		fsType = "filesystem"
		if comp, ok := l.fsys.(introspection.Component); ok {
			fsType = comp.ComponentType()
		}
	}

	return LoaderState{
		Marker:     l.marker,
		Strict:     l.strict,
		FileSystem: fsType,
	}
}

// ComponentType implements introspection.Component.
func (l *Loader) ComponentType() string {
	return "loader"
}

var _ introspection.Introspectable = (*Loader)(nil)
var _ introspection.Component = (*Loader)(nil)
