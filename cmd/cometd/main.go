package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/miquido/cometd-client/cometd"
)

func init() {
	log := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log
}

func main() {
	configPath := flag.String("config", "cometd.toml", "path to the TOML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal().Err(err).Msg("streaming failed")
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := cometd.NewClient(
		cfg.ServerURL,
		cfg.AccessToken,
		cometd.WithMaxRetries(cfg.MaxRetries),
		cometd.WithObserver(cometd.LogObserver{}),
	)
	if err != nil {
		return err
	}

	streamer := cometd.NewStreamer(client, cfg.Channels...)

	if err := streamer.Start(ctx); err != nil {
		return err
	}

	log.Info().
		Str("clientId", client.Session().ClientID()).
		Strs("channels", cfg.Channels).
		Msg("session established, streaming")

	for {
		select {
		case <-ctx.Done():
			stopCtx := context.Background()

			if err := streamer.Stop(stopCtx); err != nil {
				log.Warn().Err(err).Msg("streamer did not stop cleanly")
			}

			if _, err := client.Disconnect(stopCtx); err != nil {
				log.Warn().Err(err).Msg("disconnect failed")
			}

			return nil

		case delivery, ok := <-streamer.Events():
			if !ok {
				return streamer.Err()
			}

			fmt.Printf("%s\t%s\n", delivery.Channel, delivery.Data)
		}
	}
}
