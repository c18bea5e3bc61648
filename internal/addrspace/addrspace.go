// Package addrspace maps positions in the virtual address space formed by
// concatenating eligible tweets to a concrete (tweet, split offset) pair and
// back. The split offset is a derived round-trip token, not a reading
// position: Forward computes off = P_i - a, Embed inserts the marker at that
// byte index, and Inverse recovers a = P_i - off exactly.
package addrspace

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnaddressable = errors.New("address beyond the eligible corpus")
	ErrMissingMarker = errors.New("marker not present in text")
	ErrUnknownTweet  = errors.New("text does not match any eligible tweet")
	ErrBadSplit      = errors.New("split offset outside tweet bounds")
)

// Eligible filters sentences down to those that can carry a marker within the
// size bound: 0 < len(s) <= limit. Order is preserved; the output order
// defines the shared address space, so both sides must call this with
// byte-identical input to agree on addressing.
func Eligible(sentences []string, limit int) []string {
	eligible := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if n := len(s); 0 < n && n <= limit {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// Space is the immutable address space over an ordered eligible-tweet
// sequence. Tweet indices are 1-based to match the prefix-sum algebra.
type Space struct {
	tweets []string
	// prefix[i] is the total length of tweets 1..i; prefix[0] = 0.
	prefix []int
}

func New(tweets []string) *Space {
	prefix := make([]int, len(tweets)+1)
	for i, t := range tweets {
		prefix[i+1] = prefix[i] + len(t)
	}
	return &Space{tweets: tweets, prefix: prefix}
}

// Count returns the number of eligible tweets.
func (s *Space) Count() int { return len(s.tweets) }

// Total returns the length of the virtual address space,
// the summed length of all eligible tweets.
func (s *Space) Total() int { return s.prefix[len(s.prefix)-1] }

// Tweet returns the text of the 1-based tweet i.
func (s *Space) Tweet(i int) string { return s.tweets[i-1] }

// Forward maps an address in [1, Total] to the lowest-indexed tweet whose
// cumulative span covers it, with off = P_i - a. The returned offset always
// satisfies 0 <= off < len(Tweet(i)).
func (s *Space) Forward(a int) (i, off int, err error) {
	if a < 1 || a > s.Total() {
		return 0, 0, fmt.Errorf("%w: address %d of %d", ErrUnaddressable, a, s.Total())
	}
	for i = 1; i < len(s.prefix); i++ {
		if s.prefix[i] >= a {
			return i, s.prefix[i] - a, nil
		}
	}
	// unreachable: a <= Total guarantees a covering prefix
	return 0, 0, fmt.Errorf("%w: address %d", ErrUnaddressable, a)
}

// Inverse recovers the address encoded by a (tweet, split offset) pair.
// It is the exact inverse of Forward for any pair Forward produced.
func (s *Space) Inverse(i, off int) int {
	return s.prefix[i] - off
}

// Embed returns tweet i's text with the marker inserted at byte index off.
func (s *Space) Embed(i, off int, marker string) (string, error) {
	t := s.Tweet(i)
	if off < 0 || off >= len(t) {
		return "", fmt.Errorf("%w: offset %d in tweet of length %d", ErrBadSplit, off, len(t))
	}
	return t[:off] + marker + t[off:], nil
}

// Extract recovers the (tweet, split offset) pair from a marked text. The
// plain text is located by first exact match; duplicate tweet texts therefore
// resolve to the earliest occurrence, which is the tweet Forward would have
// chosen.
func (s *Space) Extract(encoded, marker string) (i, off int, err error) {
	off = strings.Index(encoded, marker)
	if off < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingMarker, marker)
	}
	plain := encoded[:off] + encoded[off+len(marker):]
	for i, t := range s.tweets {
		if t == plain {
			return i + 1, off, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownTweet, plain)
}
