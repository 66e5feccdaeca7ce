// Package dotpath splits delimiter-joined path strings into key
// sequences, honoring backslash-escaped delimiters.
package dotpath

import "strings"

// DefaultDelimiter separates keys in a path unless a caller chooses
// another delimiter.
const DefaultDelimiter = "."

// sentinel stands in for an escaped delimiter while splitting. NUL
// cannot appear in a key produced by ordinary path strings.
const sentinel = "\x00"

// Split turns a delimiter-joined path into its ordered key sequence.
// A backslash immediately before the delimiter makes the delimiter a
// literal part of the key rather than a split point. The empty path is
// a single empty-string key, not an empty sequence.
//
// Split never uses pattern matching, so delimiters containing regexp
// metacharacters are handled literally. Any string is valid input.
func Split(path, delimiter string) []string {
	if path == "" {
		return []string{""}
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	escaped := `\` + delimiter
	if !strings.Contains(path, escaped) {
		return strings.Split(path, delimiter)
	}
	masked := strings.ReplaceAll(path, escaped, sentinel)
	keys := strings.Split(masked, delimiter)
	for i, key := range keys {
		keys[i] = strings.ReplaceAll(key, sentinel, delimiter)
	}
	return keys
}
