package frontpage

import (
	"context"
	"time"
)

// NewsItem represents one article extracted from the homepage.
type NewsItem struct {
	// Title is the article headline. It is never empty: fragments whose
	// title trims to the empty string are discarded during extraction.
	Title string `json:"title"`

	// Description is the article summary. It may be empty when the
	// fragment carries neither a summary paragraph nor image alt text.
	Description string `json:"description"`

	// Link is the absolute article URL, or "" when the title carries
	// no anchor.
	Link string `json:"link"`

	// ImageURL is the absolute URL of the article image, or nil when
	// the fragment has no matching image element.
	ImageURL *string `json:"image_url"`
}

// NewsResponse is the outward-facing result of one scrape.
type NewsResponse struct {
	// ScrapedAt records when the response was assembled, in UTC.
	ScrapedAt time.Time `json:"scraped_at"`

	// News holds the extracted items in document order, capped at
	// MaxNewsItems. It is never nil so it serializes as [].
	News []NewsItem `json:"news"`

	// Error carries the upstream failure message when the fetch or
	// parse failed, nil otherwise.
	Error *string `json:"error"`
}

// MaxNewsItems is the hard cap on items per response. Extraction stops
// permanently once the cap is reached; later fragments are not evaluated.
const MaxNewsItems = 20

// Scraper produces a complete NewsResponse for the configured homepage.
// Implementations never return an error: upstream failures are folded
// into the response's Error field.
type Scraper interface {
	Scrape(ctx context.Context) *NewsResponse
}
