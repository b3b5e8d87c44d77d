package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>O prefeito anunciou obras.</p><p>As obras começam amanhã.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "O prefeito anunciou obras.")
		assert.Contains(t, md, "As obras começam amanhã.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Manchete</h1><h2>Linha fina</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Manchete")
		assert.Contains(t, md, "## Linha fina")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Leia a <a href="https://example.com/nota">nota oficial</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[nota oficial](https://example.com/nota)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Saúde</li><li>Educação</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Saúde")
		assert.Contains(t, md, "- Educação")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Urgente</strong> e <em>exclusivo</em>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Urgente**")
		assert.Contains(t, md, "*exclusivo*")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<blockquote><p>Vamos resolver isso.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> Vamos resolver isso.")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table>
<thead><tr><th>Cidade</th><th>Chuva</th></tr></thead>
<tbody><tr><td>Santos</td><td>80mm</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Cidade")
		assert.Contains(t, md, "Santos")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	})

	t.Run("returns error when markup has no text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert(`<div><span></span></div>`)

		require.Error(t, err)
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	})
}
