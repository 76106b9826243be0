package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/shortpath/pkg/graph"
)

// Line lengths the format was designed around. Longer lines are read whole.
const (
	MaxHeaderLine = 7
	MaxEdgeLine   = 10
)

var (
	// ErrNoHeader is returned when the header line cannot be read.
	ErrNoHeader = errors.New("missing header line")

	// ErrMalformedHeader is returned when the header has no leading vertex count.
	ErrMalformedHeader = errors.New("header does not start with a vertex count")
)

// EdgeRecord is one parsed edge line.
type EdgeRecord struct {
	V1, V2, Weight int
}

// ParseHeader reads the first line of r and returns the vertex count.
func ParseHeader(r *bufio.Reader) (int, error) {
	line, err := r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return 0, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}

	end := strings.IndexFunc(line, func(c rune) bool {
		return (c < '0' || c > '9') && c != ','
	})
	if end >= 0 {
		line = line[:end]
	}

	tokens := splitTokens(line)
	if len(tokens) == 0 {
		return 0, ErrMalformedHeader
	}
	n, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return n, nil
}

// ParseEdgeLine reads the next edge line from r. It returns false once the
// input is exhausted or can no longer be read.
func ParseEdgeLine(r *bufio.Reader) (EdgeRecord, bool) {
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			return EdgeRecord{}, false
		}
		if strings.TrimSpace(line) == "" {
			if err != nil {
				return EdgeRecord{}, false
			}
			continue
		}

		var fields [3]int
		for i, tok := range splitTokens(line) {
			if i == len(fields) {
				break
			}
			fields[i] = atoi(tok)
		}
		return EdgeRecord{V1: fields[0], V2: fields[1], Weight: fields[2]}, true
	}
}

// ReadGraph parses a graph from r. Any rejected edge fails the whole load;
// the error wraps the graph sentinel and names the offending line.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	br := bufio.NewReader(r)

	n, err := ParseHeader(br)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	for line := 2; ; line++ {
		rec, ok := ParseEdgeLine(br)
		if !ok {
			return g, nil
		}
		if err := g.AddEdge(rec.V1, rec.V2, rec.Weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// ImportGraph reads a graph file at path.
func ImportGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// splitTokens splits on commas and drops empty tokens.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(c rune) bool { return c == ',' })
}

// atoi parses like C's atoi: leading whitespace, an optional sign, then as
// many digits as follow. No digits, or a value that does not fit, gives 0.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
