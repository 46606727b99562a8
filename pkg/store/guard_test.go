package store

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/entry"
	"tableflip.dev/sidelist/pkg/settings"
)

const groceries = "## Groceries <!-- expanded:true -->\n\n- milk\n- eggs\n"

func newTestGuard(t *testing.T, v Vault) (*Guard, *observer.ObservedLogs, *[]string) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	var notes []string
	g := NewGuard(v, settings.Defaults(), zap.New(core), NotifierFunc(func(msg string) {
		notes = append(notes, msg)
	}))
	return g, logs, &notes
}

func seed(t *testing.T, v Vault, text string) {
	t.Helper()
	_, err := v.Create(context.Background(), settings.DefaultFilePath, text)
	require.NoError(t, err)
}

func contentOf(t *testing.T, v Vault) string {
	t.Helper()
	ctx := context.Background()
	f, err := v.Lookup(ctx, settings.DefaultFilePath)
	require.NoError(t, err)
	require.NotNil(t, f)
	text, err := v.Read(ctx, f)
	require.NoError(t, err)
	return text
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	g, _, _ := newTestGuard(t, NewMemVault())
	c := g.Load(context.Background())
	require.NotNil(t, c)
	require.True(t, c.Empty())
}

func TestLoadParsesFile(t *testing.T) {
	v := NewMemVault()
	seed(t, v, groceries)
	g, _, _ := newTestGuard(t, v)

	c := g.Load(context.Background())
	require.Equal(t, 1, c.Len())
	require.Equal(t, "Groceries", c[0].Name)
	require.Equal(t, []entry.Item{{Content: "milk"}, {Content: "eggs"}}, c[0].Items)
}

func TestLoadReadFailureIsEmptyAndLogged(t *testing.T) {
	v := NewMemVault()
	seed(t, v, groceries)
	g, logs, notes := newTestGuard(t, &failingVault{Vault: v, readErr: errors.New("disk on fire")})

	c := g.Load(context.Background())
	require.True(t, c.Empty())
	require.Equal(t, 1, logs.FilterMessage("load lists: read failed").Len())
	require.Empty(t, *notes, "read failures are not surfaced to the user")
}

func TestSaveCreatesThenModifies(t *testing.T) {
	v := NewMemVault()
	g, _, _ := newTestGuard(t, v)
	ctx := context.Background()

	c := collection.Collection{}
	c.InsertList("Groceries")
	require.NoError(t, g.Save(ctx, c))
	require.Equal(t, "## Groceries <!-- expanded:true -->\n\n", contentOf(t, v))

	_, err := c.InsertItem(0, "milk")
	require.NoError(t, err)
	_, err = c.InsertItem(0, "eggs")
	require.NoError(t, err)
	require.NoError(t, g.Save(ctx, c))
	require.Equal(t, groceries, contentOf(t, v))
}

func TestSaveRefusesEmptyOverNonEmpty(t *testing.T) {
	v := NewMemVault()
	seed(t, v, groceries)
	g, logs, notes := newTestGuard(t, v)

	require.NoError(t, g.Save(context.Background(), collection.Collection{}))
	require.Equal(t, groceries, contentOf(t, v))
	require.EqualValues(t, 1, g.Skipped())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	require.Empty(t, *notes)
}

func TestSaveEmptyOverUnparseableContent(t *testing.T) {
	v := NewMemVault()
	seed(t, v, "some notes without lists\n")
	g, _, _ := newTestGuard(t, v)

	require.NoError(t, g.Save(context.Background(), collection.Collection{}))
	require.Equal(t, "", contentOf(t, v))
	require.Zero(t, g.Skipped())
}

func TestSaveEmptyWhenNoFile(t *testing.T) {
	v := NewMemVault()
	g, _, _ := newTestGuard(t, v)
	require.NoError(t, g.Save(context.Background(), collection.Collection{}))
	require.Equal(t, "", contentOf(t, v))
}

func TestSaveEmptyProceedsWhenExistingUnreadable(t *testing.T) {
	v := NewMemVault()
	seed(t, v, groceries)
	g, logs, _ := newTestGuard(t, &failingVault{Vault: v, readErr: errors.New("locked")})

	require.NoError(t, g.Save(context.Background(), collection.Collection{}))
	require.Equal(t, "", contentOf(t, v))
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestSaveWriteFailureNotifies(t *testing.T) {
	v := NewMemVault()
	seed(t, v, groceries)
	g, _, notes := newTestGuard(t, &failingVault{Vault: v, writeErr: errors.New("read-only vault")})

	c := collection.Unmarshal(groceries)
	c.InsertList("Chores")
	err := g.Save(context.Background(), c)
	require.Error(t, err)
	require.Len(t, *notes, 1)
	require.Contains(t, (*notes)[0], "read-only vault")
	require.Equal(t, groceries, contentOf(t, v))
}

func TestWithSettingsSwitchesFile(t *testing.T) {
	v := NewMemVault()
	seed(t, v, groceries)
	g, _, _ := newTestGuard(t, v)

	other := g.WithSettings(settings.Defaults().WithFilePath("other/lists.md"))
	require.Equal(t, "other/lists.md", other.Path())
	require.True(t, other.Load(context.Background()).Empty())

	c := collection.Collection{}
	c.InsertList("Elsewhere")
	require.NoError(t, other.Save(context.Background(), c))
	require.Equal(t, groceries, contentOf(t, v), "existing file untouched")
}

func TestLookupDirectoryIsNotAFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/"+settings.DefaultFilePath, 0o755))
	f, err := NewFsVault(fs).Lookup(context.Background(), settings.DefaultFilePath)
	require.NoError(t, err)
	require.Nil(t, f)
}

type failingVault struct {
	Vault
	readErr  error
	writeErr error
}

func (f *failingVault) Read(ctx context.Context, file *File) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.Vault.Read(ctx, file)
}

func (f *failingVault) Write(ctx context.Context, file *File, text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.Vault.Write(ctx, file, text)
}
