package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/marcules/genfind/internal/formatter"
	"github.com/marcules/genfind/internal/lyrics"
	"github.com/marcules/genfind/internal/services"
	"github.com/marcules/genfind/internal/shared"
	"github.com/marcules/genfind/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	spotify    services.Extractor
	soundcloud services.Extractor
	catalog    services.Catalog
	scraper    tasks.Scraper
	logger     *log.Logger
	output     io.Writer
	errOutput  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Spotify    services.Extractor
	SoundCloud services.Extractor
	Catalog    services.Catalog
	Scraper    tasks.Scraper
	Logger     *log.Logger
	Output     io.Writer
	ErrOutput  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Spotify == nil {
		opts.Spotify = services.NewSpotifyExtractor("", nil)
	}
	if opts.SoundCloud == nil {
		opts.SoundCloud = services.NewSoundCloudExtractor("", nil)
	}
	if opts.Scraper == nil {
		opts.Scraper = lyrics.NewScraper(nil)
	}

	return &Runner{
		config:     opts.Config,
		spotify:    opts.Spotify,
		soundcloud: opts.SoundCloud,
		catalog:    opts.Catalog,
		scraper:    opts.Scraper,
		logger:     opts.Logger,
		output:     opts.Output,
		errOutput:  opts.ErrOutput,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){setupCommand} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig resolves the effective config: injected, file at path, or defaults.
func (r *Runner) loadConfig(path string) *shared.Config {
	if r.config != nil {
		return r.config
	}

	if _, err := os.Stat(path); err == nil {
		if config, err := shared.LoadConfig(path); err == nil {
			return config
		} else {
			r.logger.Warnf("failed to load config, using defaults: %v", err)
		}
	}
	return shared.DefaultConfig()
}

// Find is the root command action: it resolves a streaming-service link into
// song metadata and/or lyrics and renders the result.
func (r *Runner) Find(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	extractor, trackURL, err := r.selectSource(cmd)
	if err != nil {
		return err
	}

	mode, err := selectMode(cmd)
	if err != nil {
		return err
	}

	config := r.loadConfig(cmd.String("config"))

	// Flags win over config defaults; config wins over the built-in defaults.
	formatValue := cmd.String("output")
	if !cmd.IsSet("output") && config.Output.Format != "" {
		formatValue = config.Output.Format
	}
	format, err := formatter.ParseFormat(formatValue)
	if err != nil {
		return err
	}

	folder := cmd.String("folder")
	if !cmd.IsSet("folder") && config.Output.Folder != "" {
		folder = config.Output.Folder
	}

	token, err := config.ResolveToken()
	if err != nil {
		return err
	}

	catalog := r.catalog
	if catalog == nil {
		catalog = services.NewGeniusService(token, "", nil)
	}

	engine := tasks.NewFinderEngine(catalog, r.scraper, r.logger)

	includeLyrics := mode != formatter.ModeData
	result, err := engine.Find(ctx, extractor, trackURL, includeLyrics)
	if err != nil {
		return err
	}

	if result.ScrapeErr != nil {
		fmt.Fprintf(r.errOutput, "[WARNING] Lyrics scraping failed: %v\n", result.ScrapeErr)
	}

	output, err := formatter.Compose(mode, format, result.Song, result.Lyrics)
	if err != nil {
		return err
	}

	if !cmd.Bool("save") {
		return r.writePlain("%s\n", output)
	}

	title, err := result.Song.Title()
	if err != nil {
		title = "unknown_title"
	}

	path, err := formatter.WriteFile(output, title, folder, format.Extension())
	if err != nil {
		return err
	}
	return r.writePlain("\n[SAVED] %s\n", path)
}

// Setup writes the example configuration file.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	return r.writePlain("✓ Config written to %s\n", path)
}

// selectSource enforces that exactly one streaming-service URL was given.
func (r *Runner) selectSource(cmd *cli.Command) (services.Extractor, string, error) {
	spotifyURL := cmd.String("spotify")
	soundcloudURL := cmd.String("soundcloud")

	switch {
	case spotifyURL != "" && soundcloudURL != "":
		return nil, "", fmt.Errorf("%w: --spotify and --soundcloud are mutually exclusive", shared.ErrInvalidArgument)
	case spotifyURL != "":
		return r.spotify, spotifyURL, nil
	case soundcloudURL != "":
		return r.soundcloud, soundcloudURL, nil
	default:
		return nil, "", fmt.Errorf("%w: one of --spotify or --soundcloud is required", shared.ErrInvalidArgument)
	}
}

// selectMode enforces that the view selectors are mutually exclusive;
// neither flag means the combined view.
func selectMode(cmd *cli.Command) (formatter.Mode, error) {
	lyricsOnly := cmd.Bool("lyrics")
	dataOnly := cmd.Bool("data")

	switch {
	case lyricsOnly && dataOnly:
		return 0, fmt.Errorf("%w: --lyrics and --data are mutually exclusive", shared.ErrInvalidArgument)
	case lyricsOnly:
		return formatter.ModeLyrics, nil
	case dataOnly:
		return formatter.ModeData, nil
	default:
		return formatter.ModeCombined, nil
	}
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
