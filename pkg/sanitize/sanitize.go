// Package sanitize turns tsconfig-style pseudo-JSON into text a strict JSON
// parser accepts. Comments become spaces, a single trailing comma before each
// `}` or `]` becomes a space, and everything else is preserved byte for byte
// so parser error offsets still point at plausible source positions.
package sanitize

import "strings"

const bom = "\uFEFF"

// StripBOM removes a leading UTF-8 byte-order mark.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, bom)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RemoveTrailingCommas returns s with every dangling comma replaced by a
// single space. A comma dangles when the next non-whitespace character is a
// closing `}` or `]`. Commas inside quoted strings are never touched.
//
// Only the comma nearest a closer is rewritten: in a run like `[1,2,,]` the
// earlier commas flush through verbatim and `[1,2, ]` comes out. Repairing
// every comma in the run is deliberately out of scope.
//
// An unterminated string leaves the scanner in-string for the rest of the
// input; no error is raised here, the strict parse downstream fails instead.
func RemoveTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	comma := -1 // position of the candidate dangling comma, -1 when none
	from := 0   // start of the run not yet flushed to the output

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			if c == '"' && !escaped(s, i) {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			comma = -1
		case c == ',':
			comma = i
		case c == '}' || c == ']':
			if comma >= 0 {
				b.WriteString(s[from:comma])
				b.WriteByte(' ')
				from = comma + 1
				comma = -1
			}
		case isSpace(c):
			// whitespace keeps the candidate alive
		default:
			comma = -1
		}
	}

	if from == 0 {
		return s
	}
	b.WriteString(s[from:])
	return b.String()
}

// escaped reports whether the character at position i is escaped, i.e. the
// number of consecutive backslashes immediately before it is odd. `\\"` is an
// escaped backslash followed by an unescaped quote, so a fixed lookbehind of
// one is not enough. The scan stops safely at the start of the buffer.
func escaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// StripComments replaces `//` line comments and `/* */` block comments with
// spaces, preserving newlines and column positions. Comment markers inside
// quoted strings are left alone. An unterminated block comment blanks the
// rest of the input.
func StripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escape := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escape {
			b.WriteByte(c)
			escape = false
			continue
		}

		if inString {
			b.WriteByte(c)
			if c == '\\' {
				escape = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' && s[i] != '\r' {
				b.WriteByte(' ')
				i++
			}
			if i < len(s) {
				b.WriteByte(s[i])
			}
			continue
		}

		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			b.WriteString("  ")
			i += 2
			for i < len(s) {
				if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
					b.WriteString("  ")
					i++
					break
				}
				if s[i] == '\n' || s[i] == '\r' {
					b.WriteByte(s[i])
				} else {
					b.WriteByte(' ')
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}
