package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespace(t *testing.T) {
	test := []struct {
		name    string
		message string
		want    []string
	}{
		{"plain", "meet at dawn", []string{"meet", "at", "dawn"}},
		{"runs collapsed", "  meet \t at\n dawn ", []string{"meet", "at", "dawn"}},
		{"punctuation kept", "meet, at dawn!", []string{"meet,", "at", "dawn!"}},
		{"empty", "", nil},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got := Whitespace(tt.message)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWords(t *testing.T) {
	test := []struct {
		name    string
		message string
		want    []string
	}{
		{"punctuation stripped", "meet, at dawn!", []string{"meet", "at", "dawn"}},
		{"digits kept", "room 42", []string{"room", "42"}},
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"empty", "", nil},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.message)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByName(t *testing.T) {
	f, err := ByName(NameWhitespace)
	require.NoError(t, err)
	assert.Equal(t, []string{"a,", "b"}, f.Tokenize("a, b"))

	f, err = ByName("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a,", "b"}, f.Tokenize("a, b"))

	f, err = ByName(NameWords)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, f.Tokenize("a, b"))

	_, err = ByName("morphemes")
	assert.Error(t, err)
}
