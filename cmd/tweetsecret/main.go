// Command tweetsecret encodes a message into marker-carrying tweets, or
// decodes received tweets back into words, against a corpus and dictionary
// shared with the other side.
//
// Encode:
//
//	tweetsecret -corpus corpus.txt -dict words.txt meet at dawn
//
// Decode:
//
//	tweetsecret -corpus corpus.txt -dict words.txt -decode "fgh|ijkl"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tweetsecret "github.com/rahmanoof/tweet-secret"
	"github.com/rahmanoof/tweet-secret/corpus"
	"github.com/rahmanoof/tweet-secret/segment"
	"github.com/rahmanoof/tweet-secret/token"
)

type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

func main() {
	log.SetFlags(0)

	var (
		corpusSrcs  multiFlag
		dictSrcs    multiFlag
		decodeTexts multiFlag
	)
	marker := flag.String("marker", tweetsecret.DefaultMarker, "marker text inserted into a tweet")
	maxLen := flag.Int("max", tweetsecret.DefaultMaxLength, "maximum length of an encoded tweet")
	segName := flag.String("segmenter", segment.NameSentences, "sentence segmenter: sentences|lines")
	tokName := flag.String("tokenizer", token.NameWhitespace, "message tokenizer: whitespace|words")
	cacheDir := flag.String("cache", filepath.Join(os.TempDir(), "tweet-secret-http-cache"), "HTTP cache directory for URL sources")
	flag.Var(&corpusSrcs, "corpus", "corpus source, URL or file path; repeatable, at least one required")
	flag.Var(&dictSrcs, "dict", "dictionary source, URL or file path; repeatable, at least one required")
	flag.Var(&decodeTexts, "decode", "received tweet to decode; repeatable, presence switches to decode mode")
	flag.Parse()

	if len(corpusSrcs) == 0 {
		flag.Usage()
		log.Fatal("at least one -corpus source is required")
	}
	if len(dictSrcs) == 0 {
		flag.Usage()
		log.Fatal("at least one -dict source is required")
	}

	seg, err := segment.ByName(*segName)
	if err != nil {
		log.Fatal(err)
	}
	tok, err := token.ByName(*tokName)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	fetcher := corpus.NewFetcher(*cacheDir)
	corpusText, warns := fetcher.Corpus(ctx, corpusSrcs)
	for _, w := range warns {
		log.Printf("warning: %v", w)
	}
	dictText, warns := fetcher.Dictionary(ctx, dictSrcs)
	for _, w := range warns {
		log.Printf("warning: %v", w)
	}

	codec, err := tweetsecret.New(corpusText, dictText,
		tweetsecret.WithMarker(*marker),
		tweetsecret.WithMaxLength(*maxLen),
		tweetsecret.WithSegmenter(seg),
		tweetsecret.WithTokenizer(tok),
	)
	if err != nil {
		log.Fatal(err)
	}

	var results []tweetsecret.Result
	if len(decodeTexts) > 0 {
		results = codec.Decode(ctx, decodeTexts)
	} else {
		message := strings.Join(flag.Args(), " ")
		if message == "" {
			flag.Usage()
			log.Fatal("nothing to encode: pass the message words as arguments")
		}
		results = codec.EncodeMessage(ctx, message)
	}
	report(results)
}

func report(results []tweetsecret.Result) {
	for _, r := range results {
		if r.Ok() {
			fmt.Println(r.Value)
			continue
		}
		log.Printf("warning: %q could not be processed: %v", r.Input, r.Err)
	}
}
