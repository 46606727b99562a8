package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const settingsKey = "settings"

// Store persists Settings between runs.
type Store interface {
	Load() (Settings, error)
	Save(s Settings) error
}

// File is where a Store opened on dir keeps its data, for watching.
func File(dir string) string {
	return filepath.Join(dir, settingsKey)
}

// Open returns a Store keeping its data under dir.
func Open(dir string) (Store, error) {
	if dir == "" {
		return nil, errors.New("settings: directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("settings: ensure directory: %w", err)
	}
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type diskvStore struct {
	d *diskv.Diskv
}

// Load merges whatever was stored over the defaults. A missing store yields
// the defaults.
func (s *diskvStore) Load() (Settings, error) {
	out := Defaults()
	if !s.d.Has(settingsKey) {
		return out, nil
	}
	// Bypass the cache: another process may have saved since.
	rc, err := s.d.ReadStream(settingsKey, true)
	if err != nil {
		return out, fmt.Errorf("settings: read: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return out, fmt.Errorf("settings: read: %w", err)
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Defaults(), fmt.Errorf("settings: decode: %w", err)
	}
	if out.FilePath == "" {
		out.FilePath = DefaultFilePath
	}
	return out, nil
}

func (s *diskvStore) Save(v Settings) error {
	if err := v.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := s.d.Write(settingsKey, data); err != nil {
		return fmt.Errorf("settings: write: %w", err)
	}
	return nil
}
