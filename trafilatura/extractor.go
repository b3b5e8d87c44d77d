// Package trafilatura adapts go-trafilatura as an alternative article
// extractor.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsdesk.Extractor at compile time.
var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the article of a news page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Fallback extractors are enabled so
// that pages trafilatura cannot classify still yield text.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract processes raw HTML and returns the article title and plain text.
func (e *Extractor) Extract(rawHTML string) (*newsdesk.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, newsdesk.Errorf(newsdesk.EUNSUPPORTED, "unsupported page structure: %v", err)
	}

	body := newsdesk.NormalizeSpace(result.ContentText)
	if body == "" {
		return nil, newsdesk.Errorf(newsdesk.EUNSUPPORTED, "unsupported page structure: no article content found")
	}

	return &newsdesk.Extraction{
		Title: newsdesk.NormalizeSpace(result.Metadata.Title),
		Body:  body,
	}, nil
}
