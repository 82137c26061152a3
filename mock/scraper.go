package mock

import (
	"context"

	"github.com/fwojciec/frontpage"
)

var _ frontpage.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of frontpage.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) *frontpage.NewsResponse
}

func (s *Scraper) Scrape(ctx context.Context) *frontpage.NewsResponse {
	return s.ScrapeFn(ctx)
}
