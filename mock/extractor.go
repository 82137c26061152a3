package mock

import "github.com/fwojciec/frontpage"

var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of frontpage.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]frontpage.NewsItem, error)
}

func (e *Extractor) Extract(html string) ([]frontpage.NewsItem, error) {
	return e.ExtractFn(html)
}
