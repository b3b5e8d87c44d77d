// Package goquery implements heuristic main-content extraction for news pages
// on top of goquery selections and a flattened element tree.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsdesk"
)

// NoiseSelector matches elements that never hold article text.
const NoiseSelector = "script, style, nav, header, footer, aside, " +
	".menu, .sidebar, .ad, .advertisement, .banner, .popup, .modal, " +
	".cookie-notice, .newsletter, .social-share, .comments, .related-posts, " +
	".recommended, .suggested, .trending, .popular, .more-news, .other-news"

// ContentSelectors are the likely article containers, in priority order.
var ContentSelectors = []string{
	"article",
	".article-content",
	".post-content",
	".news-content",
	"main",
	".main-content",
	"#content",
	".entry-content",
	".story-content",
}

// TitleSelector matches elements likely to hold the headline.
const TitleSelector = "h1, .title, .headline, .article-title, .post-title"

// Title length bounds, exclusive, in runes.
const (
	minTitleLength = 10
	maxTitleLength = 200
)

// Ensure Extractor implements newsdesk.Extractor at compile time.
var _ newsdesk.Extractor = (*Extractor)(nil)

// Extractor finds the main article of a page by scoring candidate elements.
type Extractor struct {
	weights Weights
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWeights replaces the default scoring weights.
func WithWeights(w Weights) Option {
	return func(e *Extractor) {
		e.weights = w
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the article title and body.
func (e *Extractor) Extract(rawHTML string) (*newsdesk.Extraction, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "failed to parse HTML: %v", err)
	}

	// Pruning mutates the document and must finish before the tree is built.
	Prune(doc)
	tree := NewTree(doc.Get(0))

	body := tree.First("body")
	if body < 0 {
		return nil, newsdesk.Errorf(newsdesk.EUNSUPPORTED, "unsupported page structure: no body")
	}

	var text string
	if best := e.SelectContent(doc, tree); best >= 0 {
		text = newsdesk.NormalizeSpace(tree.Text(best))
	} else {
		text = newsdesk.NormalizeSpace(tree.Text(body))
	}
	if text == "" {
		return nil, newsdesk.Errorf(newsdesk.EUNSUPPORTED, "unsupported page structure: no article content found")
	}

	return &newsdesk.Extraction{
		Title: FindTitle(doc, tree.Text(body)),
		Body:  text,
	}, nil
}

// Prune removes every element matching NoiseSelector from the document.
func Prune(doc *goquery.Document) {
	doc.Find(NoiseSelector).Remove()
}

// candidate is the best-so-far accumulator of the selection fold.
type candidate struct {
	node  int
	score float64
}

// consider keeps the new node only if it scores strictly higher, so ties go
// to the node seen first.
func (c candidate) consider(node int, score float64) candidate {
	if score > c.score {
		return candidate{node: node, score: score}
	}
	return c
}

// SelectContent returns the index of the element chosen as the article
// container, or -1 when no element scores above zero.
//
// The first match of each ContentSelectors entry is scored in order. Only
// when none of them beats the zero baseline is every element under body
// scored, in document order.
func (e *Extractor) SelectContent(doc *goquery.Document, tree *Tree) int {
	anchor := tree.First("h1")
	best := candidate{node: -1}

	for _, sel := range ContentSelectors {
		match := doc.Find(sel).First()
		if match.Length() == 0 {
			continue
		}
		i, ok := tree.Lookup(match.Get(0))
		if !ok {
			continue
		}
		best = best.consider(i, Score(tree, i, anchor, e.weights))
	}
	if best.node >= 0 {
		return best.node
	}

	body := tree.First("body")
	if body < 0 {
		return -1
	}
	for i := body + 1; i < tree.Nodes[body].End; i++ {
		best = best.consider(i, Score(tree, i, anchor, e.weights))
	}
	return best.node
}

// FindTitle returns the normalized text of the first title-like element
// whose raw text, surrounding whitespace included, is between
// minTitleLength and maxTitleLength runes. Failing that, it returns the first
// normalized line of bodyText within those bounds that ends with a period.
func FindTitle(doc *goquery.Document, bodyText string) string {
	var title string
	doc.Find(TitleSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := sel.Text()
		if titleLength(text) {
			title = newsdesk.NormalizeSpace(text)
			return false
		}
		return true
	})
	if title != "" {
		return title
	}

	for _, line := range strings.Split(bodyText, "\n") {
		line = newsdesk.NormalizeSpace(line)
		if titleLength(line) && strings.HasSuffix(line, ".") {
			return line
		}
	}
	return ""
}

func titleLength(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > minTitleLength && n < maxTitleLength
}
