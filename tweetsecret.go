// Package tweetsecret hides a message inside innocuous tweet-length snippets
// drawn from a corpus shared by sender and receiver. A message word is never
// transmitted as content: its dictionary line number is an address in the
// virtual stream formed by concatenating all eligible corpus sentences, and
// that address is carried by inserting a short marker inside the one sentence
// whose span covers it.
//
// This is an obscurity technique, not cryptography. Both sides must hold the
// same corpus, dictionary, marker, and size bound; none of these are ever
// transmitted or stored by this package.
package tweetsecret

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rahmanoof/tweet-secret/internal/addrspace"
	"github.com/rahmanoof/tweet-secret/internal/dictionary"
	"github.com/rahmanoof/tweet-secret/segment"
	"github.com/rahmanoof/tweet-secret/token"
)

const (
	DefaultMarker    = "|"
	DefaultMaxLength = 280
)

// Run-level errors returned by New. Nothing is processed once either occurs.
var (
	ErrTweetSize      = errors.New("maximum length leaves no room for the marker")
	ErrCorpusTooSmall = errors.New("corpus cannot address every dictionary line")
)

// Per-item errors carried in Result.Err. A failed item never aborts a batch.
var (
	ErrWordNotInDictionary = dictionary.ErrNotFound
	ErrAddressOutOfRange   = addrspace.ErrUnaddressable
	ErrMissingMarker       = addrspace.ErrMissingMarker
	ErrUnknownTweet        = addrspace.ErrUnknownTweet
	ErrLineOutOfRange      = dictionary.ErrOutOfRange
)

var (
	_ Segmenter = (segment.Func)(nil)
	_ Tokenizer = (token.Func)(nil)
)

// Encode hides each message word in a copy of one eligible corpus sentence.
// This is a convenience function that creates a Codec instance and calls its
// Encode method.
func Encode(ctx context.Context, corpusText, dictionaryText string, words []string, opts ...Option) ([]Result, error) {
	c, err := New(corpusText, dictionaryText, opts...)
	if err != nil {
		return nil, err
	}
	return c.Encode(ctx, words), nil
}

// Decode recovers the hidden word from each received text.
// This is a convenience function that creates a Codec instance and calls its
// Decode method.
func Decode(ctx context.Context, corpusText, dictionaryText string, texts []string, opts ...Option) ([]Result, error) {
	c, err := New(corpusText, dictionaryText, opts...)
	if err != nil {
		return nil, err
	}
	return c.Decode(ctx, texts), nil
}

// Codec holds the address space and dictionary index for one run. Both
// structures are built once by New and never mutated, so a Codec is safe for
// concurrent use.
type Codec struct {
	marker    string
	maxLength int
	segmenter Segmenter
	tokenizer Tokenizer

	space *addrspace.Space
	dict  *dictionary.Index
}

// New builds a Codec from normalized corpus text and dictionary text.
// The corpus is segmented, filtered down to sentences short enough to carry
// the marker within the size bound, and indexed into the virtual address
// space. For default marker, size bound, segmenter, and tokenizer, refer to
// the init method.
//
// Returns ErrTweetSize when the size bound leaves no room for a sentence next
// to the marker, and ErrCorpusTooSmall when the eligible corpus is shorter
// than the dictionary, which would leave dictionary lines unaddressable.
func New(corpusText, dictionaryText string, opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	tweetSize := c.maxLength - len(c.marker)
	if tweetSize < 1 {
		return nil, fmt.Errorf("%w: maximum length %d, marker length %d", ErrTweetSize, c.maxLength, len(c.marker))
	}
	c.space = addrspace.New(addrspace.Eligible(c.segmenter.Segment(corpusText), tweetSize))
	c.dict = dictionary.New(dictionaryText)
	if c.space.Total() < c.dict.Len() {
		return nil, fmt.Errorf("%w: %d addressable characters for %d dictionary lines",
			ErrCorpusTooSmall, c.space.Total(), c.dict.Len())
	}
	return c, nil
}

func (c *Codec) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.marker == "" {
		c.marker = DefaultMarker
	}
	if c.maxLength == 0 {
		c.maxLength = DefaultMaxLength
	}
	if c.segmenter == nil {
		c.segmenter = segment.Func(segment.Sentences)
	}
	if c.tokenizer == nil {
		c.tokenizer = token.Func(token.Whitespace)
	}
	return nil
}

// Capacity returns the total addressable length of the eligible corpus.
func (c *Codec) Capacity() int { return c.space.Total() }

// EligibleTweets returns the number of corpus sentences short enough to
// carry the marker.
func (c *Codec) EligibleTweets() int { return c.space.Count() }

// DictionaryLines returns the number of lines in the shared dictionary.
func (c *Codec) DictionaryLines() int { return c.dict.Len() }

// Encode hides each word in a copy of one eligible corpus sentence.
//
// Process, per word:
//  1. Resolves the word to its dictionary line number.
//  2. Maps the line number to the sentence whose span covers that address.
//  3. Inserts the marker into the sentence at the derived split offset.
//
// Results are positionally aligned with words; a failed word carries its
// error in Result.Err and the batch always completes.
func (c *Codec) Encode(ctx context.Context, words []string) []Result {
	results := make([]Result, len(words))
	var wg sync.WaitGroup
	wg.Add(len(words))
	for at, word := range words {
		go func(at int, word string) {
			defer wg.Done()
			results[at] = c.encode(ctx, word)
		}(at, word)
	}
	wg.Wait()
	return results
}

// EncodeMessage tokenizes the raw message and encodes the resulting words.
func (c *Codec) EncodeMessage(ctx context.Context, message string) []Result {
	return c.Encode(ctx, c.tokenizer.Tokenize(message))
}

// Decode recovers the hidden word from each received text.
//
// Process, per text:
//  1. Locates the marker and strips it to recover the plain sentence.
//  2. Finds the sentence in the eligible sequence by first exact match.
//  3. Derives the address from the match and the marker position.
//  4. Resolves the address back to its dictionary line.
//
// Results are positionally aligned with texts; a failed text carries its
// error in Result.Err and the batch always completes.
func (c *Codec) Decode(ctx context.Context, texts []string) []Result {
	results := make([]Result, len(texts))
	var wg sync.WaitGroup
	wg.Add(len(texts))
	for at, text := range texts {
		go func(at int, text string) {
			defer wg.Done()
			results[at] = c.decode(ctx, text)
		}(at, text)
	}
	wg.Wait()
	return results
}

func (c *Codec) encode(ctx context.Context, word string) Result {
	r := Result{Input: word}
	if r.Err = ctx.Err(); r.Err != nil {
		return r
	}
	line, err := c.dict.Lookup(word)
	if err != nil {
		r.Err = err
		return r
	}
	i, off, err := c.space.Forward(line)
	if err != nil {
		r.Err = err
		return r
	}
	r.Value, r.Err = c.space.Embed(i, off, c.marker)
	return r
}

func (c *Codec) decode(ctx context.Context, text string) Result {
	r := Result{Input: text}
	if r.Err = ctx.Err(); r.Err != nil {
		return r
	}
	i, off, err := c.space.Extract(text, c.marker)
	if err != nil {
		r.Err = err
		return r
	}
	r.Value, r.Err = c.dict.Word(c.space.Inverse(i, off))
	return r
}
