// Package readability adapts go-readability as an alternative article
// extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsdesk.Extractor at compile time.
var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article of a news page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and plain text.
func (e *Extractor) Extract(rawHTML string) (*newsdesk.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, newsdesk.Errorf(newsdesk.EUNSUPPORTED, "unsupported page structure: %v", err)
	}

	body := newsdesk.NormalizeSpace(article.TextContent)
	if body == "" {
		return nil, newsdesk.Errorf(newsdesk.EUNSUPPORTED, "unsupported page structure: no article content found")
	}

	return &newsdesk.Extraction{
		Title: newsdesk.NormalizeSpace(article.Title),
		Body:  body,
	}, nil
}
