package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"island/internal/config"
	"island/internal/game"
	"island/internal/logging"
)

func main() {
	if err := config.BindFlags(pflag.CommandLine); err != nil {
		bootstrapLogger().Fatal().Err(err).Msg("failed to register flags")
	}
	pflag.Parse()

	cfg, err := config.Load(config.Dir())
	if err != nil {
		bootstrapLogger().Fatal().Err(err).Str("dir", config.Dir()).Msg("failed to load configuration")
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("logLevel", cfg.LogLevel).
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Bool("audio", cfg.Audio.Enabled).
		Msg("starting")

	if err := game.RunDesktop(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}

// bootstrapLogger is used before the configuration is known.
func bootstrapLogger() *zerolog.Logger {
	l := logging.New(os.Stderr, "info", "console")
	return &l
}
