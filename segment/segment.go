// Package segment provides the closed set of sentence segmenters. A
// segmenter is selected by configuration value through ByName; there is no
// dynamic registration.
package segment

import (
	"fmt"
	"strings"
)

const (
	NameSentences = "sentences"
	NameLines     = "lines"
)

// Func adapts a plain segmentation function to the Segmenter interface of
// the root package.
type Func func(text string) []string

func (f Func) Segment(text string) []string { return f(text) }

// ByName returns the segmenter registered under name. The empty name selects
// Sentences.
func ByName(name string) (Func, error) {
	switch name {
	case NameSentences, "":
		return Sentences, nil
	case NameLines:
		return Lines, nil
	}
	return nil, fmt.Errorf("unknown segmenter %q", name)
}

// Sentences splits text on runs of the terminators '.', '!' and '?', keeping
// the terminators with their sentence. Surrounding whitespace is trimmed and
// empty segments are dropped. Trailing text without a terminator forms a
// final sentence.
func Sentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !terminator(text[i]) {
			continue
		}
		j := i + 1
		for j < len(text) && terminator(text[j]) {
			j++
		}
		if s := strings.TrimSpace(text[start:j]); s != "" {
			out = append(out, s)
		}
		start = j
		i = j - 1
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func terminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// Lines splits text on newlines, trimming each line and dropping empty ones.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
