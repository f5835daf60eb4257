// submodule cmd contains command and flag definitions
package main

import "github.com/urfave/cli/v3"

// findFlags defines the flags of the root resolution command.
func findFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "spotify",
			Aliases: []string{"sp"},
			Usage:   "Spotify track URL (mutually exclusive with --soundcloud)",
		},
		&cli.StringFlag{
			Name:    "soundcloud",
			Aliases: []string{"sc"},
			Usage:   "SoundCloud track URL (mutually exclusive with --spotify)",
		},
		&cli.BoolFlag{
			Name:    "lyrics",
			Aliases: []string{"l"},
			Usage:   "Return only the lyrics",
		},
		&cli.BoolFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "Return only the song metadata",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: \"text\" or \"json\"",
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:    "save",
			Aliases: []string{"f"},
			Usage:   "Save output to a file named after the song title",
		},
		&cli.StringFlag{
			Name:    "folder",
			Aliases: []string{"F"},
			Usage:   "Target folder for --save (created if absent)",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable debug logging",
		},
	}
}

// setupCommand handles configuration bootstrap.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write an example config.toml to get started",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}
