package core

import "errors"

// Common errors.
var (
	// ErrNotFound reports that an explicit argument did not resolve to a
	// usable file. Call sites wrap it with the original argument so the
	// diagnostic names what the user typed. The no-argument ascent search
	// never produces it; absence there is a normal outcome.
	ErrNotFound = errors.New("tsconfig file not found")
)
