//go:build windows

// hkbind registers the hotkeys listed in a YAML bindings file and runs
// their actions until interrupted.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/sibber5/GlobalHotkeys/hotkeys"
)

func main() {
	configPath := flag.String("config", "bindings.yaml", "path to the bindings file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load bindings")
	}

	mgr := hotkeys.New(hotkeys.Options{
		Logger: &logger,
		OnError: func(id hotkeys.ID, err error) {
			logger.Error().Err(err).Int32("id", int32(id)).Msg("hotkey failure")
		},
	})

	for _, b := range cfg.Bindings {
		mods, key, err := hotkeys.ParseCombo(b.Keys)
		if err != nil {
			logger.Fatal().Err(err).Str("combo", b.Keys).Msg("bad combo")
		}
		h, err := makeHandler(b, logger)
		if err != nil {
			logger.Fatal().Err(err).Str("combo", b.Keys).Msg("bad action")
		}
		id, err := mgr.AddOrReplaceHotkey(mods, key, h, b.noRepeat())
		if err != nil {
			logger.Fatal().Err(err).Str("combo", b.Keys).Msg("register hotkey")
		}
		logger.Info().Int32("id", int32(id)).Str("combo", b.Keys).Str("action", b.Action).Msg("hotkey bound")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down")
	if err := mgr.Dispose(); err != nil {
		logger.Error().Err(err).Msg("dispose")
	}
}
