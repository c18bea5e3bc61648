// Package token provides the closed set of message tokenizers, selected by
// configuration value through ByName.
package token

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	NameWhitespace = "whitespace"
	NameWords      = "words"
)

// Func adapts a plain tokenization function to the Tokenizer interface of
// the root package.
type Func func(message string) []string

func (f Func) Tokenize(message string) []string { return f(message) }

// ByName returns the tokenizer registered under name. The empty name selects
// Whitespace.
func ByName(name string) (Func, error) {
	switch name {
	case NameWhitespace, "":
		return Whitespace, nil
	case NameWords:
		return Words, nil
	}
	return nil, fmt.Errorf("unknown tokenizer %q", name)
}

// Whitespace splits the message on whitespace runs, keeping punctuation
// attached to its word.
func Whitespace(message string) []string {
	return strings.Fields(message)
}

// Words splits the message into runs of letters and digits, dropping
// punctuation entirely.
func Words(message string) []string {
	return strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
