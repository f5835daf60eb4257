package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/marcules/genfind/internal/services"
	"github.com/marcules/genfind/internal/shared"
	tu "github.com/marcules/genfind/internal/testing"
)

func sampleRecord() services.SongRecord {
	return services.SongRecord{
		"title":          "Song",
		"url":            "https://genius.com/song-lyrics",
		"primary_artist": map[string]any{"name": "Artist"},
	}
}

func TestFinderEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves url to song and lyrics", func(t *testing.T) {
		engine := NewFinderEngine(
			&tu.MockCatalog{SongID: 42, Record: sampleRecord()},
			&tu.MockScraper{Text: "la la la"},
			nil,
		)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Track: "Song", Artist: "Artist"}}

		result, err := engine.Find(ctx, extractor, "https://open.spotify.com/track/abc", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.SongID != 42 {
			t.Errorf("expected song id 42, got %d", result.SongID)
		}
		if result.Lyrics != "la la la" {
			t.Errorf("expected lyrics, got %q", result.Lyrics)
		}
		if result.ScrapeErr != nil {
			t.Errorf("expected no scrape error, got %v", result.ScrapeErr)
		}
	})

	t.Run("skips scraping when lyrics not requested", func(t *testing.T) {
		engine := NewFinderEngine(
			&tu.MockCatalog{SongID: 42, Record: sampleRecord()},
			&tu.MockScraper{Err: shared.ErrScrapeFailed},
			nil,
		)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Track: "Song"}}

		result, err := engine.Find(ctx, extractor, "url", false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Lyrics != "" || result.ScrapeErr != nil {
			t.Error("expected scraper untouched when lyrics not requested")
		}
	})

	t.Run("extraction failure is fatal", func(t *testing.T) {
		engine := NewFinderEngine(&tu.MockCatalog{}, &tu.MockScraper{}, nil)
		extractor := &tu.MockExtractor{Err: shared.ErrExtraction}

		if _, err := engine.Find(ctx, extractor, "url", true); !errors.Is(err, shared.ErrExtraction) {
			t.Errorf("expected ErrExtraction, got %v", err)
		}
	})

	t.Run("empty track is a fatal extraction failure", func(t *testing.T) {
		engine := NewFinderEngine(&tu.MockCatalog{}, &tu.MockScraper{}, nil)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Artist: "Artist"}}

		if _, err := engine.Find(ctx, extractor, "url", true); !errors.Is(err, shared.ErrExtraction) {
			t.Errorf("expected ErrExtraction, got %v", err)
		}
	})

	t.Run("no match is fatal", func(t *testing.T) {
		engine := NewFinderEngine(&tu.MockCatalog{SearchErr: shared.ErrTrackNotFound}, &tu.MockScraper{}, nil)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Track: "Song"}}

		if _, err := engine.Find(ctx, extractor, "url", true); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
	})

	t.Run("song fetch auth failure is fatal", func(t *testing.T) {
		engine := NewFinderEngine(&tu.MockCatalog{SongErr: shared.ErrAuthFailed}, &tu.MockScraper{}, nil)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Track: "Song"}}

		if _, err := engine.Find(ctx, extractor, "url", true); !errors.Is(err, shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}
	})

	t.Run("cancellation during scraping aborts the run", func(t *testing.T) {
		engine := NewFinderEngine(
			&tu.MockCatalog{SongID: 42, Record: sampleRecord()},
			&tu.MockScraper{Err: context.Canceled},
			nil,
		)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Track: "Song"}}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := engine.Find(cancelled, extractor, "url", true); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("scrape failure degrades to empty lyrics", func(t *testing.T) {
		engine := NewFinderEngine(
			&tu.MockCatalog{SongID: 42, Record: sampleRecord()},
			&tu.MockScraper{Err: shared.ErrScrapeFailed},
			nil,
		)
		extractor := &tu.MockExtractor{Query: services.TrackQuery{Track: "Song"}}

		result, err := engine.Find(ctx, extractor, "url", true)
		if err != nil {
			t.Fatalf("expected pipeline to succeed, got %v", err)
		}
		if result.Lyrics != "" {
			t.Errorf("expected empty lyrics, got %q", result.Lyrics)
		}
		if !errors.Is(result.ScrapeErr, shared.ErrScrapeFailed) {
			t.Errorf("expected recorded scrape error, got %v", result.ScrapeErr)
		}
	})
}
