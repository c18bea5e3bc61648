package tweetsecret

// Segmenter splits normalized corpus text into an ordered sentence sequence.
// Its output order defines the shared address space, so encoder and decoder
// must produce byte-identical sequences from identical corpus text.
type Segmenter interface {
	Segment(text string) []string
}

// Tokenizer splits a raw message into the word tokens to encode.
type Tokenizer interface {
	Tokenize(message string) []string
}
