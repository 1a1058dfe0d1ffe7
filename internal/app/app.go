package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/pokedex/internal/config"
	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/state"
	"github.com/five82/pokedex/internal/ui"
)

// Options configure the Pokedex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pokedex/prefs.toml
	BaseURL    string // overrides config and environment when set
	LogLevel   string // overrides config and environment when set
}

// runtime is the wiring shared by the TUI and one-shot commands.
type runtime struct {
	cfg    config.Config
	log    *zap.Logger
	client *pokeapi.Client
}

func setup(opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Override(opts.BaseURL, opts.LogLevel)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := pokeapi.NewClient(cfg.BaseURL)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init pokeapi client: %w", err)
	}

	return &runtime{cfg: cfg, log: logger, client: client}, nil
}

func (r *runtime) close() {
	_ = r.log.Sync()
}

// Run boots the Pokedex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		rt.log.Warn("load prefs, using defaults", zap.Error(err))
	}

	rt.log.Info("pokedex starting",
		zap.String("base_url", rt.client.BaseURL()),
		zap.String("theme", userPrefs.Theme))

	err = ui.Run(ui.Options{
		Context:   ctx,
		Client:    rt.client,
		Store:     state.NewStore(rt.log.Named("store")),
		Logger:    rt.log.Named("ui"),
		LogPath:   rt.cfg.LogFile,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
	if err != nil {
		rt.log.Error("ui exited", zap.Error(err))
		return err
	}
	rt.log.Info("pokedex stopped")
	return nil
}
