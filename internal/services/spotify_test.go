package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcules/genfind/internal/shared"
)

func oembedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSpotifyExtractor(t *testing.T) {
	ctx := context.Background()

	t.Run("Name", func(t *testing.T) {
		if svc := NewSpotifyExtractor("", nil); svc.Name() != "Spotify" {
			t.Errorf("expected name 'Spotify', got %s", svc.Name())
		}
	})

	t.Run("NewSpotifyExtractor uses default URL", func(t *testing.T) {
		if svc := NewSpotifyExtractor("", nil); svc.baseURL != spotifyOEmbedURL {
			t.Errorf("expected baseURL %s, got %s", spotifyOEmbedURL, svc.baseURL)
		}
	})

	t.Run("Extract", func(t *testing.T) {
		t.Run("splits title into track and artist", func(t *testing.T) {
			server := oembedServer(t, http.StatusOK, `{"title": "Song Name - Artist Name"}`)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			query, err := svc.Extract(ctx, "https://open.spotify.com/track/abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if query.Track != "Song Name" {
				t.Errorf("expected track 'Song Name', got %q", query.Track)
			}
			if query.Artist != "Artist Name" {
				t.Errorf("expected artist 'Artist Name', got %q", query.Artist)
			}
		})

		t.Run("takes last part as artist when title has several separators", func(t *testing.T) {
			server := oembedServer(t, http.StatusOK, `{"title": "Song - Remix - Artist"}`)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			query, err := svc.Extract(ctx, "https://open.spotify.com/track/abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if query.Track != "Song" || query.Artist != "Artist" {
				t.Errorf("expected {Song, Artist}, got {%q, %q}", query.Track, query.Artist)
			}
		})

		t.Run("title without separator yields empty artist", func(t *testing.T) {
			server := oembedServer(t, http.StatusOK, `{"title": "Standalone Title"}`)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			query, err := svc.Extract(ctx, "https://open.spotify.com/track/abc")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if query.Track != "Standalone Title" {
				t.Errorf("expected track to be the whole title, got %q", query.Track)
			}
			if query.Artist != "" {
				t.Errorf("expected empty artist, got %q", query.Artist)
			}
		})

		t.Run("error status wraps ErrExtraction", func(t *testing.T) {
			server := oembedServer(t, http.StatusNotFound, `{}`)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			if _, err := svc.Extract(ctx, "https://open.spotify.com/track/abc"); !errors.Is(err, shared.ErrExtraction) {
				t.Errorf("expected ErrExtraction, got %v", err)
			}
		})

		t.Run("missing title wraps ErrExtraction", func(t *testing.T) {
			server := oembedServer(t, http.StatusOK, `{"author_name": "someone"}`)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			if _, err := svc.Extract(ctx, "https://open.spotify.com/track/abc"); !errors.Is(err, shared.ErrExtraction) {
				t.Errorf("expected ErrExtraction, got %v", err)
			}
		})

		t.Run("cancellation survives the error chain", func(t *testing.T) {
			started := make(chan struct{})
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				close(started)
				<-r.Context().Done()
			}))
			t.Cleanup(server.Close)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				<-started
				cancel()
			}()

			_, err := svc.Extract(ctx, "https://open.spotify.com/track/abc")
			if !errors.Is(err, shared.ErrExtraction) {
				t.Errorf("expected ErrExtraction, got %v", err)
			}
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled in the chain, got %v", err)
			}
		})

		t.Run("malformed JSON wraps ErrExtraction", func(t *testing.T) {
			server := oembedServer(t, http.StatusOK, `not json`)
			svc := NewSpotifyExtractor(server.URL, server.Client())

			if _, err := svc.Extract(ctx, "https://open.spotify.com/track/abc"); !errors.Is(err, shared.ErrExtraction) {
				t.Errorf("expected ErrExtraction, got %v", err)
			}
		})
	})
}

func TestTrackQuery(t *testing.T) {
	t.Run("Query joins track and artist", func(t *testing.T) {
		q := TrackQuery{Track: "Song", Artist: "Artist"}
		if q.Query() != "Song Artist" {
			t.Errorf("expected 'Song Artist', got %q", q.Query())
		}
	})

	t.Run("Query trims when artist empty", func(t *testing.T) {
		q := TrackQuery{Track: "Song"}
		if q.Query() != "Song" {
			t.Errorf("expected 'Song', got %q", q.Query())
		}
	})
}
