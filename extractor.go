package frontpage

// Extractor extracts news items from a homepage HTML document.
//
// Extraction is pure and deterministic: it performs no I/O, keeps no state
// between calls, and given the same document text always produces the same
// items in the same (document) order. Implementations are safe for
// concurrent use.
type Extractor interface {
	// Extract parses the document and returns at most MaxNewsItems items.
	// A document without the expected page-body section yields an empty
	// slice and a nil error; only a failed parse returns an error.
	Extract(html string) ([]NewsItem, error)
}
