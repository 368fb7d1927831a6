package main

import (
	"context"
	"io"
	"os"

	"github.com/gndm/itunesSearch/internal/browser"
	"github.com/gndm/itunesSearch/internal/config"
	"github.com/gndm/itunesSearch/internal/itunes"
	"github.com/gndm/itunesSearch/internal/logging"
	"github.com/gndm/itunesSearch/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	logging.Debug().
		Str("search_url", cfg.Search.URL).
		Dur("timeout", cfg.Search.Timeout).
		Bool("strict_selection", cfg.Session.StrictSelection).
		Msg("configuration loaded")

	if err := run(context.Background(), cfg, browser.NewOpener(), os.Stdin, os.Stdout); err != nil {
		logging.Fatal().Err(err).Msg("session ended with error")
	}
}

// run wires the client and session from cfg and drives the interactive loop.
func run(ctx context.Context, cfg *config.Config, opener browser.Opener, in io.Reader, out io.Writer) error {
	sess := session.New(newClient(cfg), opener, in, out,
		session.WithStrictSelection(cfg.Session.StrictSelection))
	return sess.Run(ctx)
}

func newClient(cfg *config.Config) *itunes.HTTPClient {
	client := itunes.NewClient(cfg.Search.URL)
	client.Timeout = cfg.Search.Timeout
	client.Country = cfg.Search.Country
	client.Media = cfg.Search.Media
	return client
}
