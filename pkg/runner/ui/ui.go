package ui

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/settings"
	"tableflip.dev/sidelist/pkg/store"
	"tableflip.dev/sidelist/pkg/tui"
)

// LogFile is the name of the UI's log inside the home directory.
const LogFile = "sidelist.log"

// UI runs the terminal sidebar.
type UI struct {
	Config  store.Config
	Verbose bool
	// Watch reloads the sidebar when the file or the settings are edited
	// elsewhere.
	Watch bool
}

// logger writes to a file so log lines do not corrupt the screen.
func (d *UI) logger() (*zap.Logger, error) {
	home := d.Config.HomePath()
	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(home, LogFile)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if d.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func (d *UI) Do(ctx context.Context) error {
	if d.Config == nil {
		var err error
		if d.Config, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	log, err := d.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	notices := tui.NewNotices()
	svc, err := app.Load(ctx, d.Config, log, notices)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := tui.Options{Log: log, Notices: notices}
	if d.Watch {
		opts.Watch = func(ctx context.Context, p string) (<-chan store.Event, error) {
			return store.Watch(ctx, p, log)
		}
		opts.SettingsPath = settings.File(d.Config.HomePath())
	}

	log.Info("starting sidebar", zap.String("file", svc.Current().FilePath))
	return tui.Run(ctx, svc, opts)
}
