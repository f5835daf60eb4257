// SoundCloud oEmbed implementation of [Extractor]
//
// https://developers.soundcloud.com/docs/oembed
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/marcules/genfind/internal/shared"
)

const soundcloudOEmbedURL = "https://soundcloud.com/oembed"

// SoundCloudExtractor implements the Extractor interface using SoundCloud's public oEmbed endpoint.
type SoundCloudExtractor struct {
	baseURL    string
	httpClient *http.Client
}

// NewSoundCloudExtractor creates a new SoundCloud extractor. A nil client gets
// a default one with the standard request timeout.
func NewSoundCloudExtractor(baseURL string, client *http.Client) *SoundCloudExtractor {
	if baseURL == "" {
		baseURL = soundcloudOEmbedURL
	}
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}

	return &SoundCloudExtractor{
		baseURL:    baseURL,
		httpClient: client,
	}
}

func (s *SoundCloudExtractor) Name() string {
	return "SoundCloud"
}

// Extract fetches oEmbed metadata for a SoundCloud track URL and parses the
// title, which SoundCloud formats as "<Artist> - <Track>".
//
// The track portion may itself contain " - ", so everything after the first
// separator is rejoined rather than discarded.
func (s *SoundCloudExtractor) Extract(ctx context.Context, trackURL string) (TrackQuery, error) {
	title, err := fetchOEmbedTitle(ctx, s.httpClient, s.baseURL+"?format=json&url="+url.QueryEscape(trackURL))
	if err != nil {
		return TrackQuery{}, fmt.Errorf("%w: invalid or unreachable SoundCloud URL: %w", shared.ErrExtraction, err)
	}

	parts := splitTitle(title)
	if len(parts) >= 2 {
		return TrackQuery{Track: strings.TrimSpace(strings.Join(parts[1:], " - ")), Artist: parts[0]}, nil
	}
	return TrackQuery{Track: title}, nil
}
