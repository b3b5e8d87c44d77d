// Package htmltomarkdown converts pasted article HTML into Markdown before it
// is handed to the rewriter.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/newsdesk"
)

// Ensure Converter implements newsdesk.Converter at compile time.
var _ newsdesk.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML into trimmed Markdown. Markup that yields no text
// is reported as invalid input.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "failed to convert HTML: %v", err)
	}

	md = strings.TrimSpace(md)
	if md == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "HTML input has no text")
	}
	return md, nil
}
