package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// ErrNotFile is returned when a path exists but is not a regular file.
var ErrNotFile = errors.New("store: not a file")

// File is a handle to an existing backing file.
type File struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Vault is the file store backing files are read from and written to. Paths
// are slash separated and relative to the vault root.
type Vault interface {
	// Lookup returns a handle for a regular file, or nil when nothing usable
	// exists at path.
	Lookup(ctx context.Context, p string) (*File, error)
	Read(ctx context.Context, f *File) (string, error)
	Write(ctx context.Context, f *File, text string) error
	// Create writes a new file, making parent directories as needed.
	Create(ctx context.Context, p string, text string) (*File, error)
	// Abs resolves p to an OS path when the vault is disk backed, or "".
	Abs(p string) string
}

// NewVault returns a Vault rooted at dir on the OS filesystem.
func NewVault(dir string) Vault {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &aferoVault{fs: afero.NewBasePathFs(afero.NewOsFs(), abs), root: abs}
}

// NewMemVault returns an in-memory Vault.
func NewMemVault() Vault {
	return &aferoVault{fs: afero.NewMemMapFs()}
}

// NewFsVault wraps an arbitrary afero filesystem.
func NewFsVault(fs afero.Fs) Vault {
	return &aferoVault{fs: fs}
}

type aferoVault struct {
	fs   afero.Fs
	root string
}

func clean(p string) string {
	return path.Clean("/" + strings.TrimPrefix(filepath.ToSlash(p), "/"))
}

func (v *aferoVault) Lookup(ctx context.Context, p string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := clean(p)
	info, err := v.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: stat %s: %w", p, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}
	return &File{Path: name, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (v *aferoVault) Read(ctx context.Context, f *File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f == nil {
		return "", fmt.Errorf("store: read: %w", os.ErrNotExist)
	}
	data, err := afero.ReadFile(v.fs, f.Path)
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", f.Path, err)
	}
	return string(data), nil
}

func (v *aferoVault) Write(ctx context.Context, f *File, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("store: write: %w", os.ErrNotExist)
	}
	if err := v.atomicWrite(f.Path, text); err != nil {
		return fmt.Errorf("store: write %s: %w", f.Path, err)
	}
	return nil
}

func (v *aferoVault) Create(ctx context.Context, p string, text string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := clean(p)
	if info, err := v.fs.Stat(name); err == nil && !info.Mode().IsRegular() {
		return nil, fmt.Errorf("store: create %s: %w", p, ErrNotFile)
	}
	if err := v.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", p, err)
	}
	if err := v.atomicWrite(name, text); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", p, err)
	}
	return v.Lookup(ctx, name)
}

// atomicWrite mirrors the collections index writer: write a sibling temp
// file, then rename over the target.
func (v *aferoVault) atomicWrite(name, text string) error {
	tmp := name + ".tmp"
	if err := afero.WriteFile(v.fs, tmp, []byte(text), 0o644); err != nil {
		return err
	}
	if err := v.fs.Rename(tmp, name); err != nil {
		_ = v.fs.Remove(tmp)
		return err
	}
	return nil
}

func (v *aferoVault) Abs(p string) string {
	if v.root == "" {
		return ""
	}
	return filepath.Join(v.root, filepath.FromSlash(strings.TrimPrefix(clean(p), "/")))
}
