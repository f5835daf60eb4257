// Genius API implementation of [Catalog]
//
// Genius API response shapes based on https://docs.genius.com/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/marcules/genfind/internal/shared"
	"golang.org/x/oauth2"
)

const geniusBaseURL = "https://api.genius.com"

// SongRecord is a Genius song document kept as an open mapping so that fields
// beyond the required subset survive serialization untouched.
type SongRecord map[string]any

// stringField reads a required top-level string field.
func (s SongRecord) stringField(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", shared.ErrMissingField, key)
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", shared.ErrMissingField, key)
	}
	return str, nil
}

// Title returns the song title.
func (s SongRecord) Title() (string, error) {
	return s.stringField("title")
}

// URL returns the song's Genius page URL.
func (s SongRecord) URL() (string, error) {
	return s.stringField("url")
}

// PrimaryArtist returns the primary artist's name.
func (s SongRecord) PrimaryArtist() (string, error) {
	artist, ok := s["primary_artist"].(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: primary_artist", shared.ErrMissingField)
	}
	name, ok := artist["name"].(string)
	if !ok {
		return "", fmt.Errorf("%w: primary_artist.name", shared.ErrMissingField)
	}
	return name, nil
}

// Album returns the album name, when the song has one.
func (s SongRecord) Album() (string, bool) {
	album, ok := s["album"].(map[string]any)
	if !ok {
		return "", false
	}
	name, ok := album["name"].(string)
	return name, ok && name != ""
}

// ReleaseDate returns the release date, when present.
func (s SongRecord) ReleaseDate() (string, bool) {
	date, ok := s["release_date"].(string)
	return date, ok && date != ""
}

// WithLyrics returns a copy of the record with a lyrics key added.
// The receiver is not mutated.
func (s SongRecord) WithLyrics(lyrics string) SongRecord {
	out := make(SongRecord, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out["lyrics"] = lyrics
	return out
}

type geniusArtist struct {
	Name string `json:"name"`
}

type geniusHitResult struct {
	ID            int64        `json:"id"`
	PrimaryArtist geniusArtist `json:"primary_artist"`
}

type geniusHit struct {
	Result geniusHitResult `json:"result"`
}

type geniusSearchResponse struct {
	Response struct {
		Hits []geniusHit `json:"hits"`
	} `json:"response"`
}

type geniusSongResponse struct {
	Response struct {
		Song SongRecord `json:"song"`
	} `json:"response"`
}

// GeniusService implements the Catalog interface for Genius API interactions.
// Uses [oauth2] with a static bearer token for authentication.
type GeniusService struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeniusService creates a new Genius catalog client authenticated with the
// given access token. A nil client gets an [oauth2]-wrapped one that attaches
// the bearer token to every request.
func NewGeniusService(token, baseURL string, client *http.Client) *GeniusService {
	if baseURL == "" {
		baseURL = geniusBaseURL
	}
	if client == nil {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		client = oauth2.NewClient(context.Background(), src)
		client.Timeout = requestTimeout
	}

	return &GeniusService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// doRequest performs an authenticated GET against the Genius API.
//
// A 401 maps to [shared.ErrAuthFailed]; any other non-success status maps to
// [shared.ErrAPIRequest].
func (g *GeniusService) doRequest(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w (HTTP 401 Unauthorized)", shared.ErrAuthFailed)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}

// Search queries the Genius search endpoint and picks the best-matching hit.
//
// Hits arrive relevance-ranked. The first hit whose primary-artist name
// contains the query artist (case-insensitive) wins; otherwise the first hit
// is taken as a best-effort fallback. This deliberately trades precision for
// robustness against featuring credits and punctuation differences in artist
// names. An empty hit list yields [shared.ErrTrackNotFound].
func (g *GeniusService) Search(ctx context.Context, query TrackQuery) (int64, error) {
	endpoint := "/search?q=" + url.QueryEscape(query.Query())

	var response geniusSearchResponse
	if err := g.doRequest(ctx, endpoint, &response); err != nil {
		return 0, err
	}

	hits := response.Response.Hits
	artist := strings.ToLower(query.Artist)

	for _, hit := range hits {
		primary := strings.ToLower(hit.Result.PrimaryArtist.Name)
		if artist != "" && strings.Contains(primary, artist) {
			return hit.Result.ID, nil
		}
	}

	if len(hits) > 0 {
		return hits[0].Result.ID, nil
	}
	return 0, shared.ErrTrackNotFound
}

// Song retrieves the full song record by identifier, passed through without
// field stripping.
func (g *GeniusService) Song(ctx context.Context, id int64) (SongRecord, error) {
	endpoint := fmt.Sprintf("/songs/%d", id)

	var response geniusSongResponse
	if err := g.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if response.Response.Song == nil {
		return nil, fmt.Errorf("%w: empty song document", shared.ErrAPIRequest)
	}

	return response.Response.Song, nil
}
