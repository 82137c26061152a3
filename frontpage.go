// Package frontpage scrapes a news homepage and exposes the extracted
// headlines as JSON. It fetches the page, locates article blocks with a
// fixed set of structural queries, and normalizes each into a NewsItem
// (title, link, description, image).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, slog/).
package frontpage
