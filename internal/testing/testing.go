// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"

	"github.com/marcules/genfind/internal/services"
)

// MockExtractor is a test double for [services.Extractor]
type MockExtractor struct {
	Query services.TrackQuery
	Err   error
}

func (m *MockExtractor) Extract(ctx context.Context, trackURL string) (services.TrackQuery, error) {
	return m.Query, m.Err
}

func (m *MockExtractor) Name() string { return "mock" }

// MockCatalog is a test double for [services.Catalog]
type MockCatalog struct {
	SongID    int64
	SearchErr error
	Record    services.SongRecord
	SongErr   error
}

func (m *MockCatalog) Search(ctx context.Context, query services.TrackQuery) (int64, error) {
	return m.SongID, m.SearchErr
}

func (m *MockCatalog) Song(ctx context.Context, id int64) (services.SongRecord, error) {
	return m.Record, m.SongErr
}

// MockScraper is a test double for the lyrics scraper
type MockScraper struct {
	Text string
	Err  error
}

func (m *MockScraper) Lyrics(ctx context.Context, pageURL string) (string, error) {
	return m.Text, m.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
