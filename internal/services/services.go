// package services defines interfaces for interacting with HTTP APIs
//
// Spotify and SoundCloud oEmbed endpoints, Genius REST API
package services

import (
	"context"
	"strings"
	"time"
)

// Every outbound request is single-shot with the same deadline and no retries.
const requestTimeout = 10 * time.Second

// TrackQuery is the canonical (track, artist) pair extracted from a
// streaming service's track metadata. Artist may be empty when unknown.
type TrackQuery struct {
	Track  string
	Artist string
}

// Query renders the search query string sent to the catalog: "<track> <artist>", trimmed.
func (q TrackQuery) Query() string {
	return strings.TrimSpace(q.Track + " " + q.Artist)
}

// Extractor defines the interface for streaming services that can resolve a
// track URL into a [TrackQuery] via their public embed endpoint.
type Extractor interface {
	// Extract fetches the service's embed metadata for trackURL and parses
	// the title string into a TrackQuery.
	Extract(ctx context.Context, trackURL string) (TrackQuery, error)

	// Name returns the name of the service (e.g., "Spotify", "SoundCloud")
	Name() string
}

// Catalog defines search and lookup operations against the lyrics catalog.
type Catalog interface {
	// Search returns the identifier of the best-matching song for the query.
	Search(ctx context.Context, query TrackQuery) (int64, error)

	// Song retrieves the full song record by identifier.
	Song(ctx context.Context, id int64) (SongRecord, error)
}

// oEmbedResponse is the subset of an oEmbed document the extractors need.
type oEmbedResponse struct {
	Title string `json:"title"`
}
