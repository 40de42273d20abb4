// Package weblink reduces a web page to a short preview: title,
// excerpt, site name. The doctor command uses it to verify that the
// reference links the bot embeds in replies resolve to a real page.
package weblink

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

type Preview struct {
	URL      string
	Title    string
	Excerpt  string
	SiteName string
}

type Previewer struct {
	client *http.Client
}

func New(client *http.Client) *Previewer {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Previewer{client: client}
}

// Preview fetches the page and distills it with readability. When the
// page has no extractable article, the bare <title> still makes a
// usable preview.
func (p *Previewer) Preview(ctx context.Context, rawURL string) (*Preview, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsedURL)
	if err != nil {
		return p.bareTitle(rawURL, body)
	}

	return &Preview{
		URL:      rawURL,
		Title:    normalizeText(article.Title),
		Excerpt:  normalizeText(article.Excerpt),
		SiteName: article.SiteName,
	}, nil
}

// bareTitle is the fallback for pages readability cannot distill.
func (p *Previewer) bareTitle(rawURL string, body []byte) (*Preview, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Preview{
		URL:   rawURL,
		Title: normalizeText(doc.Find("title").First().Text()),
	}, nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
