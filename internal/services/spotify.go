// Spotify oEmbed implementation of [Extractor]
//
// https://developer.spotify.com/documentation/embeds/reference/oembed
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/marcules/genfind/internal/shared"
)

const spotifyOEmbedURL = "https://open.spotify.com/oembed"

// SpotifyExtractor implements the Extractor interface using Spotify's public oEmbed endpoint.
type SpotifyExtractor struct {
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyExtractor creates a new Spotify extractor. A nil client gets a
// default one with the standard request timeout.
func NewSpotifyExtractor(baseURL string, client *http.Client) *SpotifyExtractor {
	if baseURL == "" {
		baseURL = spotifyOEmbedURL
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	return &SpotifyExtractor{
		baseURL:    baseURL,
		httpClient: client,
	}
}

func (s *SpotifyExtractor) Name() string {
	return "Spotify"
}

// Extract fetches oEmbed metadata for a Spotify track URL and parses the
// title, which Spotify formats as "<Track> - <Artist>".
func (s *SpotifyExtractor) Extract(ctx context.Context, trackURL string) (TrackQuery, error) {
	title, err := fetchOEmbedTitle(ctx, s.httpClient, s.baseURL+"?url="+url.QueryEscape(trackURL))
	if err != nil {
		return TrackQuery{}, fmt.Errorf("%w: invalid or unreachable Spotify URL: %w", shared.ErrExtraction, err)
	}

	parts := splitTitle(title)
	if len(parts) >= 2 {
		return TrackQuery{Track: parts[0], Artist: parts[len(parts)-1]}, nil
	}
	return TrackQuery{Track: title}, nil
}

// splitTitle splits an oEmbed title on the literal " - " separator and trims each part.
func splitTitle(title string) []string {
	raw := strings.Split(title, " - ")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	return parts
}

// fetchOEmbedTitle performs the GET against an oEmbed endpoint and returns the
// title field. A missing or empty title is an error: without it there is
// nothing to search the catalog for.
func fetchOEmbedTitle(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("oembed error: status %d", resp.StatusCode)
	}

	var data oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Title == "" {
		return "", fmt.Errorf("title not found")
	}

	return data.Title, nil
}
