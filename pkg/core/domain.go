// Result is the central value of the domain.
package core

import "fmt"

// DefaultMarkerName is the filename searched for during directory ascent
// when no explicit argument is given.
const DefaultMarkerName = "tsconfig.json"

// Result pairs the resolved configuration path with the parsed document.
// Path is empty when no file was found and Config holds the default document.
type Result struct {
	Path   string
	Config any
}

// DefaultConfig returns the document substituted when the ascent search
// reaches the filesystem root without finding a marker file.
func DefaultConfig() map[string]any {
	return map[string]any{
		"files":           []any{},
		"compilerOptions": map[string]any{},
	}
}

// EventType represents the type of change observed on a watched file.
type EventType string

const (
	EventReload EventType = "RELOAD"
	EventRemove EventType = "REMOVE"
)

// Event represents a change to a watched configuration file.
// Config holds the freshly parsed document for RELOAD events; Err is set
// instead when the re-read or re-parse failed.
type Event struct {
	Type      EventType
	Path      string
	Config    any
	Err       error
	Timestamp int64 // Unix timestamp
}

// String describes the event for logs and generic event sinks.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
