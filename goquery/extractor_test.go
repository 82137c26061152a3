package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/frontpage"
	fpquery "github.com/fwojciec/frontpage/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T, opts ...fpquery.Option) *fpquery.Extractor {
	t.Helper()
	qs, err := fpquery.NewQuerySet()
	require.NoError(t, err)
	return fpquery.NewExtractor(qs, opts...)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts a fully populated article", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="body-hp">
	<div class="bck-media-news">
		<h4 class="title-art-hp"><a href="/a/1">Breaking News</a></h4>
		<p class="subtitle-art">desc</p>
		<img class="is_full_image" data-src="/img.jpg" alt="alt text">
	</div>
</div>
</body>
</html>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Breaking News", items[0].Title)
		assert.Equal(t, "https://www.corriere.it/a/1", items[0].Link)
		assert.Equal(t, "desc", items[0].Description)
		require.NotNil(t, items[0].ImageURL)
		assert.Equal(t, "https://www.corriere.it/img.jpg", *items[0].ImageURL)
	})

	t.Run("returns empty slice when page-body container is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Orphan</a></h4>
</div>
</body></html>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("returns empty slice when body has no article children", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="body-hp"><p>nothing here</p></div></body></html>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("skips fragments without a title element", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<p class="subtitle-art">no title here</p>
</div>
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/2">Second</a></h4>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Second", items[0].Title)
	})

	t.Run("skips fragments whose title trims to empty", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">   </a></h4>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("title without anchor yields empty link", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp">No Anchor</h4>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "No Anchor", items[0].Title)
		assert.Empty(t, items[0].Link)
	})

	t.Run("normalizes relative hrefs against the site origin", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Relative</a></h4>
</div>
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="https://example.com/a/2">Absolute</a></h4>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "https://www.corriere.it/a/1", items[0].Link)
		assert.Equal(t, "https://example.com/a/2", items[1].Link)
	})

	t.Run("respects a custom origin", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Custom</a></h4>
</div>
</div>`

		items, err := newExtractor(t, fpquery.WithOrigin("https://news.example.org")).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "https://news.example.org/a/1", items[0].Link)
	})

	t.Run("joins title text nodes with spaces and trims", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1"><b>Breaking</b><span>News</span></a></h4>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Breaking News", items[0].Title)
	})

	t.Run("prefers lazy-load attribute over src", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Lazy</a></h4>
	<img class="is_full_image" data-src="/lazy.jpg" src="/eager.jpg">
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].ImageURL)
		assert.Equal(t, "https://www.corriere.it/lazy.jpg", *items[0].ImageURL)
	})

	t.Run("falls back to src when lazy-load attribute is absent", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Eager</a></h4>
	<img class="is_full_image" src="https://cdn.example.com/eager.jpg">
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].ImageURL)
		assert.Equal(t, "https://cdn.example.com/eager.jpg", *items[0].ImageURL)
	})

	t.Run("omits image URL when no image element matches", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">No Image</a></h4>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].ImageURL)
	})

	t.Run("uses image alt text when summary is missing", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Alt Fallback</a></h4>
	<img class="is_full_image" src="/img.jpg" alt="X">
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "X", items[0].Description)
	})

	t.Run("summary wins over image alt text", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Summary Wins</a></h4>
	<p class="subtitle-art">from summary</p>
	<img class="is_full_image" src="/img.jpg" alt="from alt">
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "from summary", items[0].Description)
	})

	t.Run("uses first matching descendant per query", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/first">First</a><a href="/second">Second</a></h4>
	<h4 class="title-art-hp"><a href="/nested">Nested</a></h4>
	<p class="subtitle-art">first summary</p>
	<p class="subtitle-art">second summary</p>
</div>
</div>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "First Second", items[0].Title)
		assert.Equal(t, "https://www.corriere.it/first", items[0].Link)
		assert.Equal(t, "first summary", items[0].Description)
	})

	t.Run("caps results at 20 items in document order", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString(`<div class="body-hp">`)
		for i := 1; i <= 25; i++ {
			fmt.Fprintf(&sb, `<div class="bck-media-news"><h4 class="title-art-hp"><a href="/a/%d">Article %d</a></h4></div>`, i, i)
		}
		sb.WriteString(`</div>`)

		items, err := newExtractor(t).Extract(sb.String())

		require.NoError(t, err)
		require.Len(t, items, frontpage.MaxNewsItems)
		for i, item := range items {
			assert.Equal(t, fmt.Sprintf("Article %d", i+1), item.Title)
		}
	})

	t.Run("only counts qualifying fragments against the cap", func(t *testing.T) {
		t.Parallel()

		// 5 title-less fragments followed by 22 qualifying ones: the
		// first 20 qualifying fragments make the cut.
		var sb strings.Builder
		sb.WriteString(`<div class="body-hp">`)
		for i := 1; i <= 5; i++ {
			sb.WriteString(`<div class="bck-media-news"><p class="subtitle-art">no title</p></div>`)
		}
		for i := 1; i <= 22; i++ {
			fmt.Fprintf(&sb, `<div class="bck-media-news"><h4 class="title-art-hp"><a href="/a/%d">Article %d</a></h4></div>`, i, i)
		}
		sb.WriteString(`</div>`)

		items, err := newExtractor(t).Extract(sb.String())

		require.NoError(t, err)
		require.Len(t, items, frontpage.MaxNewsItems)
		assert.Equal(t, "Article 1", items[0].Title)
		assert.Equal(t, "Article 20", items[19].Title)
	})

	t.Run("ignores articles outside the page-body container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/out">Outside</a></h4>
</div>
<div class="body-hp">
	<div class="bck-media-news">
		<h4 class="title-art-hp"><a href="/in">Inside</a></h4>
	</div>
</div>
</body></html>`

		items, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Inside", items[0].Title)
	})

	t.Run("extraction is deterministic", func(t *testing.T) {
		t.Parallel()

		html := `<div class="body-hp">
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/1">Once</a></h4>
	<p class="subtitle-art">desc</p>
</div>
<div class="bck-media-news">
	<h4 class="title-art-hp"><a href="/a/2">Twice</a></h4>
</div>
</div>`

		e := newExtractor(t)
		first, err := e.Extract(html)
		require.NoError(t, err)
		second, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
