// Package goquery implements frontpage.Extractor using CSS-selector
// queries over a parsed HTML document.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/frontpage"
)

// Structural queries for the corriere.it homepage layout.
const (
	articleSelector = ".bck-media-news"
	titleSelector   = "h4.title-art-hp"
	anchorSelector  = "a"
	summarySelector = "p[class^='subtitle']"
	imageSelector   = "img.is_full_image"
	bodySelector    = ".body-hp"
)

// QuerySet holds the six structural queries, compiled once. It is
// immutable after construction and safe to share across concurrent
// extractions without synchronization.
type QuerySet struct {
	article goquery.Matcher
	title   goquery.Matcher
	anchor  goquery.Matcher
	summary goquery.Matcher
	image   goquery.Matcher
	body    goquery.Matcher
}

// NewQuerySet compiles the six queries. Compilation either succeeds for
// all of them or fails with an ECONFIG error naming the query that did
// not. The queries are fixed constants, so a failure here is a
// startup-time condition, never a per-request one.
func NewQuerySet() (*QuerySet, error) {
	qs := &QuerySet{}
	for _, q := range []struct {
		name     string
		selector string
		dst      *goquery.Matcher
	}{
		{"article", articleSelector, &qs.article},
		{"title", titleSelector, &qs.title},
		{"anchor", anchorSelector, &qs.anchor},
		{"summary", summarySelector, &qs.summary},
		{"image", imageSelector, &qs.image},
		{"body", bodySelector, &qs.body},
	} {
		m, err := cascadia.Compile(q.selector)
		if err != nil {
			return nil, frontpage.Errorf(frontpage.ECONFIG, "failed to parse %s selector: %v", q.name, err)
		}
		*q.dst = m
	}
	return qs, nil
}
