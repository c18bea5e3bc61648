// Package dictionary indexes the shared word list. A word's 1-based line
// number is its numeric identity for addressing; lookups resolve against the
// ordered line list directly.
package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("word not in dictionary")
	ErrOutOfRange = errors.New("line number out of dictionary range")
)

// Index is an immutable ordered word list with 1-based line numbers.
// Duplicate lines are kept; only the first occurrence is addressable.
type Index struct {
	lines []string
	// first maps a lowercased line to the number of its first occurrence.
	first map[string]int
}

// New builds an Index from dictionary text, one word or phrase per line.
// A trailing newline does not produce an extra line. Matching is
// case-insensitive and whole-line.
func New(text string) *Index {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	first := make(map[string]int, len(lines))
	for i, line := range lines {
		key := strings.ToLower(line)
		if _, ok := first[key]; !ok {
			first[key] = i + 1
		}
	}
	return &Index{lines: lines, first: first}
}

// Len returns the number of dictionary lines.
func (x *Index) Len() int { return len(x.lines) }

// Lookup returns the 1-based number of the first line equal to word,
// ignoring case.
func (x *Index) Lookup(word string) (int, error) {
	if n, ok := x.first[strings.ToLower(word)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, word)
}

// Word returns the line at the 1-based number n.
func (x *Index) Word(n int) (string, error) {
	if n < 1 || n > len(x.lines) {
		return "", fmt.Errorf("%w: line %d of %d", ErrOutOfRange, n, len(x.lines))
	}
	return x.lines[n-1], nil
}
