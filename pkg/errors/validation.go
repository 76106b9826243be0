package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseVertexArg parses a vertex given on the command line or in a query
// string. Surrounding whitespace is ignored; anything else that is not a
// base-10 integer is rejected.
func ParseVertexArg(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidArguments, "source vertex cannot be empty")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, New(ErrCodeInvalidArguments, "source vertex %q is not an integer", s)
	}
	return v, nil
}

// ValidateSource checks that source names a vertex of a graph with
// vertexCount vertices.
func ValidateSource(source, vertexCount int) error {
	if source < 0 || source > vertexCount-1 {
		return New(ErrCodeInvalidArguments, "supplied source vertex %d does not exist in graph (vertices 0..%d)", source, vertexCount-1)
	}
	return nil
}

// ValidateGraphPath validates a graph file path given by the user.
// It does not touch the filesystem; opening the file reports IO errors.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateGraphPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidArguments, "graph file path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidArguments, "graph file path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidArguments, "graph file path contains invalid characters")
		}
	}

	return nil
}

// ValidateChoice checks that value is one of allowed. name labels the
// setting in the message, e.g. "format".
func ValidateChoice(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeInvalidArguments, "invalid %s %q (want one of %s)", name, value, strings.Join(allowed, ", "))
}
