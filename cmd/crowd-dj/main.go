// Command crowd-dj runs the crowd DJ recommendation service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/abunchofdevs/crowd-dj/internal/completion"
	"github.com/abunchofdevs/crowd-dj/internal/mood"
	"github.com/abunchofdevs/crowd-dj/internal/recommend"
	"github.com/abunchofdevs/crowd-dj/internal/spotify"
	"github.com/abunchofdevs/crowd-dj/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; deployments use the process environment.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := completion.LoadConfig()
	if err != nil {
		return err
	}

	sensorClient := completion.NewClient(cfg.OpenAIKey, completion.OpenAIBaseURL, completion.OpenAIModel, logger)

	// The queue endpoint prefers the secondary provider when configured.
	playbackClient := sensorClient
	if cfg.GroqKey != "" {
		playbackClient = completion.NewClient(cfg.GroqKey, completion.GroqBaseURL, completion.GroqModel, logger)
	}

	var resolver recommend.TrackResolver
	spotifyClient, err := spotify.NewFromEnv(context.Background())
	if err != nil {
		return fmt.Errorf("creating spotify client: %w", err)
	}
	if spotifyClient != nil {
		resolver = spotifyClient
		logger.Info().Msg("spotify track resolution enabled")
	}

	service := recommend.NewService(recommend.Config{
		History:  mood.NewHistory(mood.HistorySize),
		Sensor:   sensorClient,
		Playback: playbackClient,
		Resolver: resolver,
		Logger:   logger,
	})

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = web.DefaultAddr
	}

	server := web.NewServer(web.ServerConfig{
		Addr:    addr,
		Service: service,
		Logger:  logger,
	})

	return server.Run()
}
