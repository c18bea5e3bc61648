package tweetsecret

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// Sentences "abcde."(6), "fghijkl!"(8), "mno?"(4) are eligible under
	// maxLength 11 with a one-character marker; the last sentence is not.
	// Total addressable length: 18.
	testCorpus = "abcde. fghijkl! mno? this sentence is definitely far too long to be eligible under the configured limit."
	testDict   = "alpha\nbravo\ncharlie"
)

func newTestCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	opts = append([]Option{WithMaxLength(11)}, opts...)
	c, err := New(testCorpus, testDict, opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := New(testCorpus, testDict)
		require.NoError(t, err)
		assert.Equal(t, DefaultMarker, c.marker)
		assert.Equal(t, DefaultMaxLength, c.maxLength)
		assert.NotNil(t, c.segmenter)
		assert.NotNil(t, c.tokenizer)
	})

	t.Run("corpus accounting", func(t *testing.T) {
		c := newTestCodec(t)
		assert.Equal(t, 3, c.EligibleTweets())
		assert.Equal(t, 18, c.Capacity())
		assert.Equal(t, 3, c.DictionaryLines())
	})

	t.Run("no room for marker", func(t *testing.T) {
		_, err := New(testCorpus, testDict, WithMaxLength(1))
		assert.True(t, errors.Is(err, ErrTweetSize))
		_, err = New(testCorpus, testDict, WithMaxLength(2), WithMarker("||"))
		assert.True(t, errors.Is(err, ErrTweetSize))
	})

	t.Run("corpus too small for dictionary", func(t *testing.T) {
		_, err := New("Hi.", "alpha\nbravo\ncharlie\ndelta", WithMaxLength(11))
		assert.True(t, errors.Is(err, ErrCorpusTooSmall))
	})

	t.Run("option errors propagate", func(t *testing.T) {
		_, err := New(testCorpus, testDict, WithMarker(""))
		assert.Error(t, err)
		_, err = New(testCorpus, testDict, WithMaxLength(0))
		assert.Error(t, err)
		_, err = New(testCorpus, testDict, WithSegmenter(nil))
		assert.Error(t, err)
		_, err = New(testCorpus, testDict, WithTokenizer(nil))
		assert.Error(t, err)
	})
}

func TestCodecEncode(t *testing.T) {
	ctx := context.Background()
	c := newTestCodec(t)

	t.Run("known words", func(t *testing.T) {
		test := []struct {
			word string
			want string
		}{
			// Line 1 is covered by "abcde." at split offset 5.
			{"alpha", "abcde|."},
			{"bravo", "abcd|e."},
			{"charlie", "abc|de."},
			// Lookup ignores case; the address is the same.
			{"CHARLIE", "abc|de."},
		}
		for _, tt := range test {
			t.Run(tt.word, func(t *testing.T) {
				results := c.Encode(ctx, []string{tt.word})
				require.Len(t, results, 1)
				require.NoError(t, results[0].Err)
				assert.Equal(t, tt.want, results[0].Value)
			})
		}
	})

	t.Run("failures keep the batch going", func(t *testing.T) {
		results := c.Encode(ctx, []string{"alpha", "delta", "bravo"})
		require.Len(t, results, 3)
		assert.True(t, results[0].Ok())
		assert.True(t, errors.Is(results[1].Err, ErrWordNotInDictionary))
		assert.Equal(t, "delta", results[1].Input)
		assert.Empty(t, results[1].Value)
		assert.True(t, results[2].Ok())
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.Empty(t, c.Encode(ctx, nil))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		results := c.Encode(cancelled, []string{"alpha", "bravo"})
		require.Len(t, results, 2)
		for _, r := range results {
			assert.True(t, errors.Is(r.Err, context.Canceled))
		}
	})
}

func TestCodecDecode(t *testing.T) {
	ctx := context.Background()
	c := newTestCodec(t)

	t.Run("per-item failures", func(t *testing.T) {
		test := []struct {
			name    string
			text    string
			want    string
			wantErr error
		}{
			{name: "valid", text: "abcd|e.", want: "bravo"},
			{name: "missing marker", text: "fghijkl!", wantErr: ErrMissingMarker},
			{name: "unknown tweet", text: "xx|yy", wantErr: ErrUnknownTweet},
			// "|mno?" resolves to address 18, beyond the 3-line dictionary.
			{name: "address beyond dictionary", text: "|mno?", wantErr: ErrLineOutOfRange},
		}
		for _, tt := range test {
			t.Run(tt.name, func(t *testing.T) {
				results := c.Decode(ctx, []string{tt.text})
				require.Len(t, results, 1)
				assert.Equal(t, tt.text, results[0].Input)
				if tt.wantErr != nil {
					assert.True(t, errors.Is(results[0].Err, tt.wantErr), "got %v", results[0].Err)
					return
				}
				require.NoError(t, results[0].Err)
				assert.Equal(t, tt.want, results[0].Value)
			})
		}
	})

	t.Run("batch completes with mixed outcomes", func(t *testing.T) {
		results := c.Decode(ctx, []string{"abcde|.", "nope", "abc|de."})
		require.Len(t, results, 3)
		assert.Equal(t, "alpha", results[0].Value)
		assert.True(t, errors.Is(results[1].Err, ErrMissingMarker))
		assert.Equal(t, "charlie", results[2].Value)
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCodec(t)

	message := []string{"alpha", "charlie", "bravo", "alpha"}
	encoded := c.Encode(ctx, message)
	require.Len(t, encoded, len(message))
	texts := make([]string, len(encoded))
	for i, r := range encoded {
		require.NoError(t, r.Err, "word %q", r.Input)
		texts[i] = r.Value
	}
	decoded := c.Decode(ctx, texts)
	require.Len(t, decoded, len(message))
	for i, r := range decoded {
		require.NoError(t, r.Err, "text %q", r.Input)
		assert.Equal(t, message[i], r.Value)
	}
}

func TestEncodeMessage(t *testing.T) {
	ctx := context.Background()
	c := newTestCodec(t)

	results := c.EncodeMessage(ctx, "  bravo   alpha ")
	require.Len(t, results, 2)
	assert.Equal(t, "abcd|e.", results[0].Value)
	assert.Equal(t, "abcde|.", results[1].Value)
}

func TestConvenienceFunctions(t *testing.T) {
	ctx := context.Background()

	encoded, err := Encode(ctx, testCorpus, testDict, []string{"bravo"}, WithMaxLength(11))
	require.NoError(t, err)
	require.Len(t, encoded, 1)
	require.NoError(t, encoded[0].Err)

	decoded, err := Decode(ctx, testCorpus, testDict, []string{encoded[0].Value}, WithMaxLength(11))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.NoError(t, decoded[0].Err)
	assert.Equal(t, "bravo", decoded[0].Value)

	_, err = Encode(ctx, testCorpus, testDict, nil, WithMaxLength(1))
	assert.True(t, errors.Is(err, ErrTweetSize))
	_, err = Decode(ctx, testCorpus, testDict, nil, WithMaxLength(1))
	assert.True(t, errors.Is(err, ErrTweetSize))
}
