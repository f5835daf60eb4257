package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/marcules/genfind/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	logger := shared.WithLogger(shared.NewLogger(nil), "run", shared.GenerateID())

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "genfind",
		Usage:    "Fetch song info and/or lyrics from Genius using a Spotify or SoundCloud link",
		Version:  "0.1.0",
		Commands: runner.register(),
		Flags:    findFlags(),
		Action:   runner.Find,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nCancelled by user.")
			return
		}
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}
