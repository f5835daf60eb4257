// package tasks implements the track resolution pipeline.
//
// The core abstraction is FinderEngine, which runs the sequential stages:
// extract a (track, artist) query from a streaming-service link, match it
// against the Genius search results, fetch the full song record, and
// optionally scrape the song page for lyrics.
package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/marcules/genfind/internal/services"
	"github.com/marcules/genfind/internal/shared"
)

// Scraper defines the lyrics page extraction dependency.
type Scraper interface {
	// Lyrics returns the lyric text of the song page at pageURL, possibly empty.
	Lyrics(ctx context.Context, pageURL string) (string, error)
}

// FindResult contains all data from one pipeline run.
type FindResult struct {
	Query  services.TrackQuery // Extracted (track, artist) pair
	SongID int64               // Matched catalog identifier
	Song   services.SongRecord // Full song record
	Lyrics string              // Extracted lyric text, empty when skipped or failed

	// ScrapeErr records a lyrics extraction failure. Scraping is the only
	// non-fatal stage: the pipeline still succeeds with empty lyrics and the
	// caller decides how to surface the warning.
	ScrapeErr error
}

// FinderEngine runs the resolution pipeline. Contains dependencies on the
// streaming-service extractors, the catalog client, and the page scraper.
type FinderEngine struct {
	catalog services.Catalog
	scraper Scraper
	logger  *log.Logger
}

// NewFinderEngine creates a new engine with the given dependencies.
func NewFinderEngine(catalog services.Catalog, scraper Scraper, logger *log.Logger) *FinderEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &FinderEngine{
		catalog: catalog,
		scraper: scraper,
		logger:  logger,
	}
}

// Find resolves trackURL through the given extractor into a song record and,
// when includeLyrics is set, its lyric text.
//
// Every stage except lyric scraping is fatal: extraction, matching, and song
// fetch errors abort the run. A scrape failure is stored in the result's
// ScrapeErr with empty lyrics substituted.
func (e *FinderEngine) Find(ctx context.Context, extractor services.Extractor, trackURL string, includeLyrics bool) (*FindResult, error) {
	query, err := extractor.Extract(ctx, trackURL)
	if err != nil {
		return nil, err
	}
	if query.Track == "" {
		return nil, fmt.Errorf("%w: could not parse metadata from provided link", shared.ErrExtraction)
	}
	e.logger.Debug("extracted track metadata", "service", extractor.Name(), "track", query.Track, "artist", query.Artist)

	songID, err := e.catalog.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("matched song", "id", songID)

	song, err := e.catalog.Song(ctx, songID)
	if err != nil {
		return nil, err
	}

	result := &FindResult{
		Query:  query,
		SongID: songID,
		Song:   song,
	}

	if !includeLyrics {
		return result, nil
	}

	pageURL, err := song.URL()
	if err != nil {
		result.ScrapeErr = err
		return result, nil
	}

	lyricsText, err := e.scraper.Lyrics(ctx, pageURL)
	if err != nil {
		// A cancelled run aborts outright; only genuine scrape failures degrade.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.ScrapeErr = err
		return result, nil
	}
	result.Lyrics = lyricsText

	return result, nil
}
