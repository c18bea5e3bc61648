// Command capacity reports how much of a dictionary a corpus can address:
// eligible sentence counts, the total virtual address space, length
// statistics, and an optional sentence-length chart.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tweetsecret "github.com/rahmanoof/tweet-secret"
	"github.com/rahmanoof/tweet-secret/corpus"
	"github.com/rahmanoof/tweet-secret/internal/addrspace"
	"github.com/rahmanoof/tweet-secret/segment"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/stat"
)

type multiFlag []string

func (m *multiFlag) String() string     { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error { *m = append(*m, v); return nil }

func main() {
	log.SetFlags(0)

	var (
		corpusSrcs multiFlag
		dictSrcs   multiFlag
	)
	marker := flag.String("marker", tweetsecret.DefaultMarker, "marker text inserted into a tweet")
	maxLen := flag.Int("max", tweetsecret.DefaultMaxLength, "maximum length of an encoded tweet")
	segName := flag.String("segmenter", segment.NameSentences, "sentence segmenter: sentences|lines")
	chartPath := flag.String("chart", "", "write a sentence-length distribution chart (SVG) to this path")
	cacheDir := flag.String("cache", filepath.Join(os.TempDir(), "tweet-secret-http-cache"), "HTTP cache directory for URL sources")
	flag.Var(&corpusSrcs, "corpus", "corpus source, URL or file path; repeatable, at least one required")
	flag.Var(&dictSrcs, "dict", "dictionary source, URL or file path; repeatable, optional")
	flag.Parse()

	if len(corpusSrcs) == 0 {
		flag.Usage()
		log.Fatal("at least one -corpus source is required")
	}
	seg, err := segment.ByName(*segName)
	if err != nil {
		log.Fatal(err)
	}
	tweetSize := *maxLen - len(*marker)
	if tweetSize < 1 {
		log.Fatalf("maximum length %d leaves no room for marker %q", *maxLen, *marker)
	}

	ctx := context.Background()
	fetcher := corpus.NewFetcher(*cacheDir)
	corpusText, warns := fetcher.Corpus(ctx, corpusSrcs)
	for _, w := range warns {
		log.Printf("warning: %v", w)
	}

	sentences := seg(corpusText)
	eligible := addrspace.Eligible(sentences, tweetSize)
	space := addrspace.New(eligible)

	fmt.Printf("sentences:        %d\n", len(sentences))
	fmt.Printf("eligible tweets:  %d (limit %d)\n", space.Count(), tweetSize)
	fmt.Printf("address space:    %d characters\n", space.Total())

	if space.Count() > 0 {
		lengths := make([]float64, space.Count())
		for i := range lengths {
			lengths[i] = float64(len(space.Tweet(i + 1)))
		}
		sort.Float64s(lengths)
		fmt.Printf("length mean:      %.1f\n", stat.Mean(lengths, nil))
		fmt.Printf("length stddev:    %.1f\n", stat.StdDev(lengths, nil))
		fmt.Printf("length median:    %.0f\n", stat.Quantile(0.5, stat.Empirical, lengths, nil))
		fmt.Printf("length p90:       %.0f\n", stat.Quantile(0.9, stat.Empirical, lengths, nil))
	}

	if len(dictSrcs) > 0 {
		dictText, warns := fetcher.Dictionary(ctx, dictSrcs)
		for _, w := range warns {
			log.Printf("warning: %v", w)
		}
		lines := 0
		if t := strings.TrimSuffix(dictText, "\n"); t != "" {
			lines = strings.Count(t, "\n") + 1
		}
		fmt.Printf("dictionary lines: %d\n", lines)
		if space.Total() < lines {
			fmt.Printf("verdict:          insufficient, %d lines unaddressable\n", lines-space.Total())
		} else {
			fmt.Printf("verdict:          ok, headroom %d characters\n", space.Total()-lines)
		}
	}

	if *chartPath != "" {
		if err := renderLengths(*chartPath, eligible); err != nil {
			log.Fatalf("failed to render chart: %v", err)
		}
		fmt.Printf("chart:            %s\n", *chartPath)
	}
}

// renderLengths plots how many eligible tweets exist per sentence length.
func renderLengths(path string, eligible []string) error {
	counts := make(map[int]int)
	for _, t := range eligible {
		counts[len(t)]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	for _, k := range keys {
		xvals = append(xvals, float64(k))
		yvals = append(yvals, float64(counts[k]))
	}
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "sentence length"},
		YAxis: chart.YAxis{Name: "count"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style:   chart.Style{DotWidth: 3},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}
