// Package store loads and saves the list collection through a vault file,
// refusing to let an empty in-memory collection overwrite persisted lists.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/settings"
)

// Notifier surfaces failures the user has to know about.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify calls f.
func (f NotifierFunc) Notify(msg string) { f(msg) }

// Guard reads and writes the backing file named by its settings.
//
// Load cannot tell "no lists" from "could not read lists", so Save refuses
// to replace a file that still parses to at least one list with an empty
// collection.
type Guard struct {
	vault    Vault
	settings settings.Settings
	base     *zap.Logger
	log      *zap.Logger
	notify   Notifier
	skipped  *atomic.Int64
}

// NewGuard builds a Guard. A nil logger or notifier is replaced by a no-op.
func NewGuard(v Vault, s settings.Settings, log *zap.Logger, n Notifier) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	if n == nil {
		n = NotifierFunc(func(string) {})
	}
	return &Guard{
		vault:    v,
		settings: s,
		base:     log,
		log:      log.With(zap.String("file", s.FilePath)),
		notify:   n,
		skipped:  &atomic.Int64{},
	}
}

// WithSettings returns a guard for another configuration value.
func (g *Guard) WithSettings(s settings.Settings) *Guard {
	ng := NewGuard(g.vault, s, g.base, g.notify)
	ng.skipped = g.skipped
	return ng
}

// Path is the vault-relative backing file.
func (g *Guard) Path() string { return g.settings.FilePath }

// Vault exposes the underlying file store.
func (g *Guard) Vault() Vault { return g.vault }

// Skipped counts saves refused by the empty-overwrite rule.
func (g *Guard) Skipped() int64 { return g.skipped.Load() }

// Load returns the persisted collection. A missing file is an empty
// collection. Read failures are logged and also yield an empty collection.
func (g *Guard) Load(ctx context.Context) collection.Collection {
	f, err := g.vault.Lookup(ctx, g.settings.FilePath)
	if err != nil {
		g.log.Error("load lists: lookup failed", zap.Error(err))
		return collection.Collection{}
	}
	if f == nil {
		g.log.Debug("load lists: no backing file")
		return collection.Collection{}
	}
	text, err := g.vault.Read(ctx, f)
	if err != nil {
		g.log.Error("load lists: read failed", zap.Error(err))
		return collection.Collection{}
	}
	c := collection.Unmarshal(text)
	g.log.Debug("loaded lists", zap.Int("lists", c.Len()), zap.Int("items", c.ItemCount()))
	return c
}

// Save writes the collection. Saving an empty collection over a file that
// still holds lists is skipped with a warning and returns nil. Write
// failures are reported through the Notifier and returned.
func (g *Guard) Save(ctx context.Context, c collection.Collection) error {
	f, err := g.vault.Lookup(ctx, g.settings.FilePath)
	if err != nil {
		return g.fail(fmt.Errorf("store: save lists: %w", err))
	}

	if c.Empty() && f != nil {
		existing, err := g.vault.Read(ctx, f)
		switch {
		case err != nil:
			g.log.Warn("save lists: could not inspect existing file, saving anyway", zap.Error(err))
		case strings.TrimSpace(existing) != "" && !collection.Unmarshal(existing).Empty():
			g.skipped.Add(1)
			g.log.Warn("save lists: refusing to overwrite existing lists with an empty collection")
			return nil
		}
	}

	text := collection.Marshal(c)
	if f != nil {
		err = g.vault.Write(ctx, f, text)
	} else {
		_, err = g.vault.Create(ctx, g.settings.FilePath, text)
	}
	if err != nil {
		return g.fail(fmt.Errorf("store: save lists: %w", err))
	}
	g.log.Debug("saved lists", zap.Int("lists", c.Len()), zap.Int("bytes", len(text)))
	return nil
}

func (g *Guard) fail(err error) error {
	g.log.Error("save lists failed", zap.Error(err))
	g.notify.Notify("Failed to save lists: " + err.Error())
	return err
}
