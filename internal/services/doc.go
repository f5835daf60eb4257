// Package services defines the [Extractor] interface for streaming services and the [Catalog] interface for the Genius API.
//
// # Extractor Interface
//
// Spotify and SoundCloud expose unauthenticated oEmbed endpoints returning a
// title string for a track URL. Both extractors split the title on " - ", but
// the two services order the segments differently:
//
//   - Spotify titles read "<Track> - <Artist>"
//   - SoundCloud titles read "<Artist> - <Track>", where the track segment may
//     itself contain the separator and is rejoined
//
// # Genius Implementation
//
// [GeniusService] authenticates with a long-lived bearer token via an
// [oauth2.StaticTokenSource] client. Search results are matched with a
// substring heuristic on the primary-artist name, falling back to the
// top-ranked hit.
//
// Song documents are kept as [SongRecord], an open map, so that unknown
// catalog fields survive the round trip to JSON output.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrExtraction] : embed metadata unreachable or malformed
//   - [shared.ErrAuthFailed] : Genius rejected the access token (HTTP 401)
//   - [shared.ErrAPIRequest] : any other Genius API failure
//   - [shared.ErrTrackNotFound] : search produced zero hits
package services
