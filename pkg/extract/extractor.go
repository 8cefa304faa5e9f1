// Package extract turns an article URL into cleaned body text and a
// representative image.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// Extractor extracts readable article content from a URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (text string, image string, err error)
}

// ReadabilityExtractor uses go-readability to fetch and parse articles.
type ReadabilityExtractor struct {
	httpClient *http.Client
}

func NewReadabilityExtractor(timeout time.Duration) *ReadabilityExtractor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ReadabilityExtractor{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Extract fetches pageURL and returns its cleaned text and top image URL. The
// image is "" when the page has none; that still counts as success.
func (e *ReadabilityExtractor) Extract(ctx context.Context, pageURL string) (string, string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", pageURL, err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("extract %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", pageURL, err)
	}

	return strings.TrimSpace(article.TextContent), article.Image, nil
}
