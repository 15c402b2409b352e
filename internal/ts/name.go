package ts

import "strings"

// SerdeName derives the exported serde variable name a generated file
// declares for a type, e.g. "fooBeet" for "Foo".
func SerdeName(typeName string) string {
	return FirstLower(typeName) + "Beet"
}

// FirstLower lowercases the first character of s. Empty strings pass
// through unchanged.
func FirstLower(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[0:1]) + s[1:]
}

// FirstUpper uppercases the first character of s. Empty strings pass
// through unchanged.
func FirstUpper(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[0:1]) + s[1:]
}
