package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/frontpage"
	"golang.org/x/net/html"
)

// DefaultOrigin is the site origin used to absolutize relative URLs.
const DefaultOrigin = "https://www.corriere.it"

// Ensure Extractor implements frontpage.Extractor at compile time.
var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor locates article fragments inside the page-body container and
// normalizes each into a frontpage.NewsItem. It holds no per-request
// state and is safe for concurrent use.
type Extractor struct {
	queries *QuerySet
	origin  string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOrigin overrides the site origin used to absolutize relative URLs.
// Defaults to DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(e *Extractor) {
		e.origin = origin
	}
}

// NewExtractor creates an Extractor that uses the given QuerySet.
func NewExtractor(queries *QuerySet, opts ...Option) *Extractor {
	e := &Extractor{
		queries: queries,
		origin:  DefaultOrigin,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the document and returns at most frontpage.MaxNewsItems
// items in document order. A document without the page-body container
// yields an empty slice and a nil error: the page legitimately may not
// contain the expected section.
func (e *Extractor) Extract(htmlText string) ([]frontpage.NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "Failed to parse document: %v", err)
	}

	items := make([]frontpage.NewsItem, 0, frontpage.MaxNewsItems)

	body := doc.FindMatcher(e.queries.body).First()
	if body.Length() == 0 {
		return items, nil
	}

	body.FindMatcher(e.queries.article).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if item, ok := e.extractItem(sel); ok {
			items = append(items, item)
		}
		// Once the cap is reached remaining fragments are not evaluated.
		return len(items) < frontpage.MaxNewsItems
	})

	return items, nil
}

// extractItem extracts a single item from one article fragment. Each
// query uses the first matching descendant; later matches are ignored
// since a fragment may contain nested structures that incidentally match.
func (e *Extractor) extractItem(sel *goquery.Selection) (frontpage.NewsItem, bool) {
	title := sel.FindMatcher(e.queries.title).First()
	if title.Length() == 0 {
		// Title is mandatory; fragments without one yield nothing.
		return frontpage.NewsItem{}, false
	}

	item := frontpage.NewsItem{Title: joinedText(title)}
	if item.Title == "" {
		return frontpage.NewsItem{}, false
	}

	href, _ := title.FindMatcher(e.queries.anchor).First().Attr("href")
	item.Link = e.absoluteURL(href)

	if summary := sel.FindMatcher(e.queries.summary).First(); summary.Length() > 0 {
		item.Description = joinedText(summary)
	}

	if img := sel.FindMatcher(e.queries.image).First(); img.Length() > 0 {
		// Prefer the lazy-load attribute: it holds the true image URL
		// before the browser swaps it into src.
		src, ok := img.Attr("data-src")
		if !ok {
			src, ok = img.Attr("src")
		}
		if ok {
			u := e.absoluteURL(src)
			item.ImageURL = &u
		}
		if item.Description == "" {
			if alt, exists := img.Attr("alt"); exists {
				item.Description = alt
			}
		}
	}

	return item, true
}

// absoluteURL prefixes site-relative references with the configured
// origin. Empty references and references already carrying an http(s)
// scheme pass through unchanged.
func (e *Extractor) absoluteURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http") {
		return ref
	}
	return e.origin + ref
}

// joinedText returns the text nodes under the selection joined by single
// spaces, with surrounding whitespace trimmed. Whitespace inside
// individual text nodes is preserved.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
