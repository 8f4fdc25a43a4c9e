// Package tsconf is the Composition Root for the tsconf library.
//
// It connects the pure parsing core (sanitize + parser) with the filesystem
// adapter using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// tsconf locates and loads tsconfig.json-style documents: JSON extended with
// comments and trailing commas. The library never writes configuration files;
// the filesystem is strictly a read-only collaborator behind the
// core.FileSystem port, which keeps every operation a pure function of its
// inputs plus the filesystem.
//
// Features:
//
//   - **Relaxed syntax**: `//` and `/* */` comments and single trailing
//     commas are sanitized away before a strict JSON parse; a blank file is
//     a valid empty document.
//   - **Directory ascent**: with no explicit filename, parent directories
//     are searched until a marker file is found or the filesystem root is
//     reached. Absence is a normal outcome, answered with a default document.
//   - **Typed Retrieval**: generic decoding (`typed.Decode[T]`) onto caller
//     structs.
//   - **Reactive**: an fsnotify-backed watcher re-parses the document on
//     change.
//   - **Extensible**: inject a custom filesystem via `WithFileSystem` for
//     tests or virtual mounts.
//
// Usage:
//
//	res, err := tsconf.Load(ctx, cwd, "",
//		tsconf.WithLogger(logger),
//	)
//	if res.Path == "" {
//		// no tsconfig.json anywhere above cwd; res.Config is the default
//	}
package tsconf
