package newsdesk

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var markdownMarkers = strings.NewReplacer(
	"**", "",
	"*", "",
	"_", "",
	"`", "",
	"#", "",
)

// NormalizeSpace collapses every run of whitespace into a single space and
// trims the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeMarkdown removes markdown emphasis markers (asterisks, underscores,
// backticks, hashes) and normalizes whitespace.
func SanitizeMarkdown(s string) string {
	return NormalizeSpace(markdownMarkers.Replace(s))
}

// voidElements are tags that count as markup without an end tag.
var voidElements = map[atom.Atom]bool{
	atom.Br:  true,
	atom.Hr:  true,
	atom.Img: true,
}

// LooksLikeHTML reports whether s holds real markup: a known element closed
// by its matching end tag, or a known void element such as <br>. Stray angle
// brackets and unclosed tags in prose do not count.
func LooksLikeHTML(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	open := make(map[atom.Atom]int)
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom == 0 {
				continue
			}
			if voidElements[tok.DataAtom] {
				return true
			}
			open[tok.DataAtom]++
		case html.EndTagToken:
			tok := z.Token()
			if tok.DataAtom != 0 && open[tok.DataAtom] > 0 {
				return true
			}
		}
	}
}
