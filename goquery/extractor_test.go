package goquery_test

import (
	"testing"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements postcraft.Extractor at compile time.
var _ postcraft.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Site | Post</title><meta property="og:title" content="The Real Title"></head>
<body><article><h1>Heading</h1><p>Text</p></article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "The Real Title", result.Title)
	})

	t.Run("falls back to h1 then title element", func(t *testing.T) {
		t.Parallel()

		withH1 := `<html><head><title>Doc Title</title></head><body><main><h1>  Main
 Heading </h1><p>x</p></main></body></html>`
		withoutH1 := `<html><head><title>Doc Title</title></head><body><main><p>x</p></main></body></html>`

		r1, err := goquery.NewExtractor().Extract(withH1)
		require.NoError(t, err)
		r2, err := goquery.NewExtractor().Extract(withoutH1)
		require.NoError(t, err)

		assert.Equal(t, "Main Heading", r1.Title)
		assert.Equal(t, "Doc Title", r2.Title)
	})

	t.Run("selects wordpress entry content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><header><h1>Post</h1></header>
<div class="entry-content"><p>The actual post body.</p></div>
<div class="share">Share on X</div>
</article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "The actual post body.")
		assert.NotContains(t, result.ContentHTML, "Share on X")
		assert.NotContains(t, result.ContentHTML, "entry-content")
	})

	t.Run("removes boilerplate around the article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav>Nav Menu</nav>
<article><p>Body paragraph.</p><script>track()</script>
<section id="comments">Reader comment</section></article>
<footer>Footer text</footer>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Body paragraph.")
		assert.NotContains(t, result.ContentHTML, "track()")
		assert.NotContains(t, result.ContentHTML, "Reader comment")
		assert.NotContains(t, result.ContentHTML, "Nav Menu")
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>Loose content.</p></div><footer>F</footer></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Loose content.")
		assert.NotContains(t, result.ContentHTML, "<footer>")
	})

	t.Run("skips empty containers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>  </article><main><p>Main text.</p></main></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Main text.")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, postcraft.EINVALID, postcraft.ErrorCode(err))
	})
}
