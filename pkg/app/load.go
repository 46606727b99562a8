package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/sidelist/pkg/settings"
	"tableflip.dev/sidelist/pkg/store"
)

// Load wires a Service from cfg: settings come from the home directory and
// backing files resolve inside the vault. The returned Service is open.
func Load(ctx context.Context, cfg store.Config, log *zap.Logger, n store.Notifier) (*Service, error) {
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}
	ss, err := settings.Open(cfg.HomePath())
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	current, err := ss.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	s := New(store.NewVault(cfg.VaultPath()), current, log, n)
	s.Settings = ss
	if err := s.Open(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
