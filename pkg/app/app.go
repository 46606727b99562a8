// Package app is the sidebar itself, independent of any terminal or toolkit:
// it owns the in-memory collection, applies user actions to it and persists
// after every change.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/settings"
	"tableflip.dev/sidelist/pkg/store"
)

// Dialog is the modal surface interactive flows ask the user through.
type Dialog interface {
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) (bool, error)
	// Prompt asks for one line of text. ok is false when the user backed out.
	Prompt(ctx context.Context, label, initial string) (value string, ok bool, err error)
}

// ErrNotOpen is returned when the service is used before Open.
var ErrNotOpen = errors.New("app: sidebar is not open")

// Service provides the operations behind every sidebar action. It is used
// from a single goroutine at a time.
type Service struct {
	Guard *store.Guard
	// Settings, when set, persists configuration changes.
	Settings settings.Store
	Dialog   Dialog
	Log      *zap.Logger

	current settings.Settings
	lists   collection.Collection
	open    bool
}

// New builds a Service for the given configuration value.
func New(v store.Vault, s settings.Settings, log *zap.Logger, n store.Notifier) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Guard:   store.NewGuard(v, s, log, n),
		Log:     log,
		current: s,
	}
}

func (s *Service) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Open loads the collection from the backing file.
func (s *Service) Open(ctx context.Context) error {
	if s.Guard == nil {
		return errors.New("app: no persistence configured")
	}
	s.lists = s.Guard.Load(ctx)
	s.open = true
	return nil
}

// Close drops the in-memory collection. Stored data is left alone.
func (s *Service) Close() {
	s.lists = nil
	s.open = false
}

// Reload re-reads the backing file, discarding the in-memory collection.
func (s *Service) Reload(ctx context.Context) error {
	return s.Open(ctx)
}

// Lists returns a copy of the current collection.
func (s *Service) Lists() collection.Collection {
	return s.lists.Clone()
}

// Current returns the configuration value in use.
func (s *Service) Current() settings.Settings {
	return s.current
}

// UpdateSettings switches to a new configuration value. Changing the file
// path reloads the collection from the new file right away.
func (s *Service) UpdateSettings(ctx context.Context, next settings.Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.Settings != nil {
		if err := s.Settings.Save(next); err != nil {
			return err
		}
	}
	return s.apply(ctx, next)
}

// SyncSettings picks up settings saved by someone else, such as the CLI
// while the sidebar is running. It reports whether anything changed.
func (s *Service) SyncSettings(ctx context.Context) (bool, error) {
	if s.Settings == nil {
		return false, nil
	}
	next, err := s.Settings.Load()
	if err != nil {
		return false, err
	}
	if next == s.current {
		return false, nil
	}
	if err := next.Validate(); err != nil {
		return false, fmt.Errorf("stored settings: %w", err)
	}
	return true, s.apply(ctx, next)
}

func (s *Service) apply(ctx context.Context, next settings.Settings) error {
	prev := s.current
	s.current = next
	if s.Guard != nil {
		s.Guard = s.Guard.WithSettings(next)
	}
	if prev.FilePath != next.FilePath && s.open {
		s.log().Info("backing file changed, reloading",
			zap.String("from", prev.FilePath), zap.String("to", next.FilePath))
		return s.Reload(ctx)
	}
	return nil
}

func (s *Service) commit(ctx context.Context) error {
	if err := s.Guard.Save(ctx, s.lists); err != nil {
		return err
	}
	return nil
}

func (s *Service) ready() error {
	if !s.open {
		return ErrNotOpen
	}
	return nil
}

// AddList appends a new expanded list. Blank names are ignored and return -1.
func (s *Service) AddList(ctx context.Context, name string) (int, error) {
	if err := s.ready(); err != nil {
		return -1, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, nil
	}
	if err := collection.ValidateName(name); err != nil {
		s.log().Warn("list name will not survive a reload", zap.Error(err))
	}
	i := s.lists.InsertList(name)
	return i, s.commit(ctx)
}

// AddItem appends an item to a list. Blank content is ignored and returns -1.
func (s *Service) AddItem(ctx context.Context, list int, content string) (int, error) {
	if err := s.ready(); err != nil {
		return -1, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return -1, nil
	}
	if err := collection.ValidateContent(content); err != nil {
		s.log().Warn("item will not survive a reload", zap.Error(err))
	}
	i, err := s.lists.InsertItem(list, content)
	if err != nil {
		return -1, err
	}
	return i, s.commit(ctx)
}

// RenameList renames a list when the new name is non-blank and different.
func (s *Service) RenameList(ctx context.Context, list int, name string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	changed, err := s.lists.RenameList(list, strings.TrimSpace(name))
	if err != nil || !changed {
		return false, err
	}
	return true, s.commit(ctx)
}

// EditItem replaces an item's content. Blank content deletes the item.
func (s *Service) EditItem(ctx context.Context, list, item int, content string) (collection.EditResult, error) {
	if err := s.ready(); err != nil {
		return collection.EditNone, err
	}
	res, err := s.lists.EditItem(list, item, strings.TrimSpace(content))
	if err != nil || res == collection.EditNone {
		return res, err
	}
	return res, s.commit(ctx)
}

// DeleteList removes a list and its items.
func (s *Service) DeleteList(ctx context.Context, list int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.lists.DeleteList(list); err != nil {
		return err
	}
	return s.commit(ctx)
}

// DeleteItem removes one item.
func (s *Service) DeleteItem(ctx context.Context, list, item int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.lists.DeleteItem(list, item); err != nil {
		return err
	}
	return s.commit(ctx)
}

// MoveList moves a list to another position.
func (s *Service) MoveList(ctx context.Context, from, to int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.lists.MoveList(from, to); err != nil {
		return err
	}
	return s.commit(ctx)
}

// MoveItem moves an item within its list.
func (s *Service) MoveItem(ctx context.Context, list, from, to int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.lists.MoveItem(list, from, to); err != nil {
		return err
	}
	return s.commit(ctx)
}

// ToggleExpanded collapses or expands a list.
func (s *Service) ToggleExpanded(ctx context.Context, list int) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	expanded, err := s.lists.ToggleExpanded(list)
	if err != nil {
		return false, err
	}
	return expanded, s.commit(ctx)
}

// ListName returns the name of the list at index.
func (s *Service) ListName(list int) (string, error) {
	if list < 0 || list >= len(s.lists) {
		return "", fmt.Errorf("%w: %d of %d", collection.ErrListIndex, list, len(s.lists))
	}
	return s.lists[list].Name, nil
}

// ItemContent returns the content of one item.
func (s *Service) ItemContent(list, item int) (string, error) {
	if _, err := s.ListName(list); err != nil {
		return "", err
	}
	items := s.lists[list].Items
	if item < 0 || item >= len(items) {
		return "", fmt.Errorf("%w: %d of %d in list %d", collection.ErrItemIndex, item, len(items), list)
	}
	return items[item].Content, nil
}

// WatchPath is the absolute path of the backing file on disk, or "" when the
// vault is not backed by the OS filesystem.
func (s *Service) WatchPath() string {
	if s.Guard == nil {
		return ""
	}
	return s.Guard.Vault().Abs(s.Guard.Path())
}
