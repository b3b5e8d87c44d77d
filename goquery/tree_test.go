package goquery_test

import (
	"strings"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsdesk/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseTree parses rawHTML into a goquery document and its flattened tree.
func parseTree(t *testing.T, rawHTML string) (*pq.Document, *goquery.Tree) {
	t.Helper()

	doc, err := pq.NewDocumentFromReader(strings.NewReader(rawHTML))
	require.NoError(t, err)
	return doc, goquery.NewTree(doc.Get(0))
}

func TestNewTree(t *testing.T) {
	t.Parallel()

	t.Run("stores elements in document order", func(t *testing.T) {
		t.Parallel()

		_, tree := parseTree(t, `<html><body><div id="a"><p>one</p></div><div id="b"></div></body></html>`)

		var tags []string
		for _, n := range tree.Nodes {
			tags = append(tags, n.Tag)
		}
		assert.Equal(t, []string{"html", "head", "body", "div", "p", "div"}, tags)
	})

	t.Run("records parent and sibling index", func(t *testing.T) {
		t.Parallel()

		_, tree := parseTree(t, `<html><body><h1>x</h1><div></div><p></p></body></html>`)

		body := tree.First("body")
		p := tree.First("p")
		require.GreaterOrEqual(t, p, 0)
		assert.Equal(t, body, tree.Nodes[p].Parent)
		assert.Equal(t, 2, tree.Nodes[p].Index)
		assert.Equal(t, 0, tree.Nodes[tree.First("h1")].Index)
		assert.Equal(t, -1, tree.Nodes[tree.First("html")].Parent)
	})

	t.Run("descendants form a contiguous range", func(t *testing.T) {
		t.Parallel()

		_, tree := parseTree(t, `<html><body><div><p><b>x</b></p><p>y</p></div><span></span></body></html>`)

		div := tree.First("div")
		assert.Equal(t, tree.First("span"), tree.Nodes[div].End)
		for i := div + 1; i < tree.Nodes[div].End; i++ {
			assert.Contains(t, []string{"p", "b"}, tree.Nodes[i].Tag)
		}
	})

	t.Run("text concatenates descendant text nodes", func(t *testing.T) {
		t.Parallel()

		_, tree := parseTree(t, `<html><body><div>Hello <b>big</b> world</div></body></html>`)

		assert.Equal(t, "Hello big world", tree.Text(tree.First("div")))
		assert.Equal(t, "big", tree.Text(tree.First("b")))
	})

	t.Run("parses id and class tokens", func(t *testing.T) {
		t.Parallel()

		_, tree := parseTree(t, `<html><body><div id="main" class="post  story-content"></div></body></html>`)

		div := tree.First("div")
		assert.Equal(t, "main", tree.Nodes[div].ID)
		assert.True(t, tree.HasClass(div, "story-content"))
		assert.False(t, tree.HasClass(div, "story"))
	})

	t.Run("looks up goquery nodes", func(t *testing.T) {
		t.Parallel()

		doc, tree := parseTree(t, `<html><body><article></article></body></html>`)

		i, ok := tree.Lookup(doc.Find("article").Get(0))

		require.True(t, ok)
		assert.Equal(t, "article", tree.Nodes[i].Tag)
	})

	t.Run("first returns -1 for missing tag", func(t *testing.T) {
		t.Parallel()

		_, tree := parseTree(t, `<html><body></body></html>`)

		assert.Equal(t, -1, tree.First("h1"))
	})
}
