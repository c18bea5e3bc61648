package tweetsecret

import (
	"errors"
	"fmt"
)

type Option func(*Codec) error

// WithMarker sets the marker text inserted into a sentence to pinpoint an
// address. Both sides must agree on it, and it must never occur naturally in
// the corpus; that precondition is assumed, not enforced.
func WithMarker(marker string) Option {
	return func(c *Codec) error {
		if marker == "" {
			return errors.New("marker must not be empty")
		}
		c.marker = marker
		return nil
	}
}

// WithMaxLength sets the maximum length of an encoded tweet, in characters.
// The marker's length is reserved out of this bound, so sentences longer than
// maxLength - len(marker) are excluded from the address space.
func WithMaxLength(maxLength int) Option {
	return func(c *Codec) error {
		if maxLength < 1 {
			return fmt.Errorf("maximum length must be positive, got %d", maxLength)
		}
		c.maxLength = maxLength
		return nil
	}
}

// WithSegmenter sets the sentence segmenter. Segmentation output defines the
// shared address space, so sender and receiver must configure the same one.
func WithSegmenter(s Segmenter) Option {
	return func(c *Codec) error {
		if s == nil {
			return errors.New("segmenter must not be nil")
		}
		c.segmenter = s
		return nil
	}
}

// WithTokenizer sets the tokenizer that splits a raw message into words.
func WithTokenizer(t Tokenizer) Option {
	return func(c *Codec) error {
		if t == nil {
			return errors.New("tokenizer must not be nil")
		}
		c.tokenizer = t
		return nil
	}
}
