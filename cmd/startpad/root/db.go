package root

import (
	"context"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/config"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/logging"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/storage"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

// openService wires config, logger, store and engine for one command run.
// The returned cleanup closes the store and flushes the logger.
func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, nil, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagDebug {
		cfg.Debug = true
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, cfg, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, cfg, nil, err
		}
	}

	store, err := storage.Open(ctx, path)
	if err != nil {
		_ = log.Sync()
		return nil, cfg, nil, err
	}

	svc := engine.NewService(store, engine.WithLogger(log))

	// Stored accent wins over the config file so `startpad` matches the
	// dashboard the user customized.
	accent, err := svc.AccentColor(ctx)
	if err == nil && accent != "" {
		ui.SetAccent(accent)
	} else {
		ui.SetAccent(cfg.AccentColor)
	}

	cleanup := func() {
		_ = store.Close()
		_ = log.Sync()
	}
	return svc, cfg, cleanup, nil
}
