package app

import (
	"context"
	"fmt"

	"roverdeck/internal/config"
	"roverdeck/internal/nasa"
	"roverdeck/internal/photos"
	"roverdeck/internal/prefs"
	"roverdeck/internal/state"
	"roverdeck/internal/ui"
)

// Options configure the roverdeck dashboard.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roverdeck/prefs.toml
	ServerAddr string // overrides the configured proxy address
}

// Run boots the dashboard until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	serverAddr := cfg.ServerAddr
	if opts.ServerAddr != "" {
		serverAddr = opts.ServerAddr
	}

	client, err := photos.NewClient(serverAddr)
	if err != nil {
		return fmt.Errorf("init proxy client: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	store := state.NewStore(nasa.Rovers)

	return ui.Run(ui.Options{
		Context:      ctx,
		Client:       client,
		Store:        store,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    prefsPath,
		InitialRover: userPrefs.LastRover,
	})
}
