// package lyrics extracts lyric text from Genius song pages.
//
// Genius marks lyric regions with a data-lyrics-container attribute and
// injects non-lyric content (ads, annotations, interstitial UI) into the same
// subtree flagged with data-exclude-from-selection. Both markers are
// structural attributes rather than styling classes, which Genius reshuffles
// frequently.
package lyrics

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/marcules/genfind/internal/shared"
	"golang.org/x/net/html"
)

const (
	containerSelector = `div[data-lyrics-container="true"]`
	excludedSelector  = `[data-exclude-from-selection]`

	// Genius serves a consent interstitial to unrecognized clients.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	requestTimeout = 10 * time.Second
)

// Scraper fetches and parses Genius song pages.
type Scraper struct {
	httpClient *http.Client
}

// NewScraper creates a new page scraper. A nil client gets a default one with
// the standard request timeout.
func NewScraper(client *http.Client) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Scraper{httpClient: client}
}

// Lyrics fetches the song page at pageURL and extracts its lyric text.
//
// Excluded subtrees are removed before text extraction. Text nodes within a
// container are joined with newlines to preserve line breaks that would
// otherwise collapse, each container is trimmed, containers left empty after
// trimming are skipped, and the remaining containers are joined with a single
// newline in document order. The result may be empty.
func (s *Scraper) Lyrics(ctx context.Context, pageURL string) (string, error) {
	doc, err := s.fetchPage(ctx, pageURL)
	if err != nil {
		return "", err
	}

	var blocks []string
	doc.Find(containerSelector).Each(func(_ int, container *goquery.Selection) {
		container.Find(excludedSelector).Remove()

		if text := strings.TrimSpace(containerText(container)); text != "" {
			blocks = append(blocks, text)
		}
	})

	return strings.Join(blocks, "\n"), nil
}

func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrScrapeFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrScrapeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrScrapeFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse page: %v", shared.ErrScrapeFailed, err)
	}

	return doc, nil
}

// containerText collects every text node under the selection and joins them
// with newlines, so that inline markup boundaries (<br>, <i>, <a>) become
// line breaks instead of running words together.
func containerText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
