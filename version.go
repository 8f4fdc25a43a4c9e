package tsconf

import _ "embed"

// Version is the library version, embedded from version.txt so release
// tooling can bump it without touching source.
//
//go:embed version.txt
var Version string
