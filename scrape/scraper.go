// Package scrape orchestrates a single scrape: fetch the homepage,
// run extraction, and assemble the outward-facing response.
package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/frontpage"
	"golang.org/x/sync/singleflight"
)

// Ensure Scraper implements frontpage.Scraper at compile time.
var _ frontpage.Scraper = (*Scraper)(nil)

// Scraper fetches the configured homepage and extracts its news items.
// Concurrent calls collapse onto a single upstream fetch; each caller
// still gets a response stamped at its own assembly time.
type Scraper struct {
	fetcher   frontpage.Fetcher
	extractor frontpage.Extractor
	url       string
	now       func() time.Time
	group     singleflight.Group
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithClock overrides the clock used for the scraped_at timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Scraper) {
		s.now = now
	}
}

// NewScraper creates a Scraper for the given homepage URL.
func NewScraper(fetcher frontpage.Fetcher, extractor frontpage.Extractor, url string, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:   fetcher,
		extractor: extractor,
		url:       url,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape fetches the homepage and extracts its items. It never returns an
// error: an upstream fetch or parse failure becomes the response's error
// field, passed through as-is, with an empty news list.
func (s *Scraper) Scrape(ctx context.Context) *frontpage.NewsResponse {
	// The collapsed fetch is shared by every caller on the key: it must
	// not inherit any single caller's cancellation, or one client
	// disconnecting would surface as an upstream failure to the rest.
	// The fetcher's own timeout still bounds the request.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(s.url, func() (any, error) {
		html, err := s.fetcher.Fetch(fetchCtx, s.url)
		if err != nil {
			return nil, err
		}
		return s.extractor.Extract(html)
	})
	if err != nil {
		return s.respond(nil, err)
	}
	items, _ := v.([]frontpage.NewsItem)
	return s.respond(items, nil)
}

// respond assembles the response record. The news list is never nil so it
// serializes as [] rather than null.
func (s *Scraper) respond(items []frontpage.NewsItem, err error) *frontpage.NewsResponse {
	resp := &frontpage.NewsResponse{
		ScrapedAt: s.now().UTC(),
		News:      []frontpage.NewsItem{},
	}
	if err != nil {
		msg := frontpage.ErrorMessage(err)
		resp.Error = &msg
		return resp
	}
	if items != nil {
		resp.News = items
	}
	return resp
}
