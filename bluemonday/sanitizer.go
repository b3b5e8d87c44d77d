// Package bluemonday strips unsafe markup from HTML pasted into the
// correction endpoint.
package bluemonday

import (
	"github.com/fwojciec/newsdesk"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements newsdesk.HTMLSanitizer at compile time.
var _ newsdesk.HTMLSanitizer = (*Sanitizer)(nil)

// Sanitizer keeps text-level structure and drops everything else, including
// images, embeds, forms and event handlers.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: textPolicy()}
}

// textPolicy is a narrowed UGC policy: only what html-to-markdown can turn
// into text survives.
func textPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	p.AllowElements(
		"p", "br", "div", "span",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i", "u", "s", "mark", "small", "sub", "sup",
		"blockquote", "q", "cite", "code", "pre",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
		"article", "section", "figure", "figcaption",
	)
	p.SkipElementsContent("script", "style", "noscript", "iframe", "object", "template")
	return p
}

// Sanitize returns html with everything outside the policy removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
