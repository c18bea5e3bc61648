// Package corpus acquires and normalizes the shared text that sender and
// receiver derive their address space from. Sources are URLs or file paths;
// HTTP sources go through an on-disk cache so repeated runs against the same
// corpus do not refetch it.
package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/yyyoichi/httpcache-go"
)

// Normalize collapses every whitespace run to a single space and trims the
// ends. Both sides must address the exact same text, so normalization is
// byte-deterministic.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Fetcher resolves corpus and dictionary sources. HTTP responses are cached
// under the configured directory.
type Fetcher struct {
	client httpcache.Client
}

func NewFetcher(cacheDir string) *Fetcher {
	return &Fetcher{
		client: httpcache.Client{
			Client:  http.DefaultClient,
			Cache:   httpcache.NewStorageCache(cacheDir),
			Handler: httpcache.NewDefaultHandler(),
		},
	}
}

// Corpus resolves every source, concatenates the texts with a single space
// and normalizes the result. A source that cannot be resolved contributes
// nothing; its error is returned for reporting but never fails the batch.
func (f *Fetcher) Corpus(ctx context.Context, sources []string) (string, []error) {
	parts, errs := f.resolve(ctx, sources)
	return Normalize(strings.Join(parts, " ")), errs
}

// Dictionary resolves every source and concatenates the texts with a
// newline, preserving line structure. Per-source failures are tolerated the
// same way as in Corpus.
func (f *Fetcher) Dictionary(ctx context.Context, sources []string) (string, []error) {
	parts, errs := f.resolve(ctx, sources)
	return strings.Join(parts, "\n"), errs
}

func (f *Fetcher) resolve(ctx context.Context, sources []string) (parts []string, errs []error) {
	for _, src := range sources {
		text, err := f.Text(ctx, src)
		if err != nil {
			errs = append(errs, fmt.Errorf("source %s skipped: %w", src, err))
			continue
		}
		parts = append(parts, text)
	}
	return parts, errs
}

// Text resolves a single source. Sources with an http or https scheme are
// fetched over HTTP; anything else is read as a file path.
func (f *Fetcher) Text(ctx context.Context, src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return f.get(ctx, src)
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
