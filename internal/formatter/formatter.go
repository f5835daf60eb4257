// package formatter composes pipeline results into their output
// representations (plain text, JSON) and handles file destinations
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/marcules/genfind/internal/services"
	"github.com/marcules/genfind/internal/shared"
)

// Mode selects which view of the result is rendered.
type Mode int

const (
	// ModeCombined renders metadata plus lyrics (the default view).
	ModeCombined Mode = iota
	// ModeLyrics renders lyrics only.
	ModeLyrics
	// ModeData renders song metadata only.
	ModeData
)

// Format selects the output serialization.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Extension returns the file extension used when saving this format.
func (f Format) Extension() string {
	if f == FormatJSON {
		return "json"
	}
	return "txt"
}

// ParseFormat validates an output format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: output must be \"text\" or \"json\", got %q", shared.ErrInvalidFlag, s)
	}
}

// Compose renders the requested view of song and lyrics in the given format.
func Compose(mode Mode, format Format, song services.SongRecord, lyricsText string) (string, error) {
	if format == FormatJSON {
		return composeJSON(mode, song, lyricsText)
	}
	return composeText(mode, song, lyricsText)
}

// composeText renders the human-readable view.
//
// Metadata lines appear in fixed order; the Album and Date lines are omitted
// entirely when the record has no value for them.
func composeText(mode Mode, song services.SongRecord, lyricsText string) (string, error) {
	if mode == ModeLyrics {
		return lyricsText, nil
	}

	metadata, err := MetadataText(song)
	if err != nil {
		return "", err
	}

	if mode == ModeData {
		return metadata, nil
	}
	return metadata + "\n\n" + lyricsText, nil
}

// composeJSON renders the machine-readable view.
//
// The song record passes through verbatim so unknown catalog fields are
// preserved; the combined view adds a lyrics key to a copy of the record.
func composeJSON(mode Mode, song services.SongRecord, lyricsText string) (string, error) {
	var payload any
	switch mode {
	case ModeLyrics:
		payload = map[string]any{"lyrics": lyricsText}
	case ModeData:
		payload = song
	default:
		payload = song.WithLyrics(lyricsText)
	}

	data, err := shared.MarshalJSON(payload, true)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MetadataText formats the song metadata block.
func MetadataText(song services.SongRecord) (string, error) {
	title, err := song.Title()
	if err != nil {
		return "", err
	}
	artist, err := song.PrimaryArtist()
	if err != nil {
		return "", err
	}
	pageURL, err := song.URL()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Title : %s\n", title))
	buf.WriteString(fmt.Sprintf("Artist: %s\n", artist))
	if album, ok := song.Album(); ok {
		buf.WriteString(fmt.Sprintf("Album : %s\n", album))
	}
	if date, ok := song.ReleaseDate(); ok {
		buf.WriteString(fmt.Sprintf("Date  : %s\n", date))
	}
	buf.WriteString(fmt.Sprintf("URL   : %s", pageURL))

	return buf.String(), nil
}

// Unicode counterpart of removing everything outside word characters,
// whitespace, hyphens, parentheses and dots.
var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-().]`)

// SanitizeFilename strips unsafe characters from a song title and replaces
// spaces with underscores. Applying it twice equals applying it once.
func SanitizeFilename(name string) string {
	cleaned := unsafeChars.ReplaceAllString(name, "")
	return strings.ReplaceAll(strings.TrimSpace(cleaned), " ", "_")
}

// WriteFile writes content to "<folder>/<sanitized title>.<extension>",
// creating the folder if needed, and returns the written path.
func WriteFile(content, title, folder, extension string) (string, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	path := filepath.Join(folder, fmt.Sprintf("%s.%s", SanitizeFilename(title), extension))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}
