package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/settings"
	"tableflip.dev/sidelist/pkg/store"
)

const groceries = "## Groceries <!-- expanded:true -->\n\n- milk\n- eggs\n"

type scriptedDialog struct {
	confirm  bool
	answer   string
	ok       bool
	err      error
	messages []string
	initial  []string
}

func (d *scriptedDialog) Confirm(_ context.Context, msg string) (bool, error) {
	d.messages = append(d.messages, msg)
	return d.confirm, d.err
}

func (d *scriptedDialog) Prompt(_ context.Context, label, initial string) (string, bool, error) {
	d.messages = append(d.messages, label)
	d.initial = append(d.initial, initial)
	return d.answer, d.ok, d.err
}

type memSettings struct {
	saved []settings.Settings
}

func (m *memSettings) Load() (settings.Settings, error) {
	if len(m.saved) == 0 {
		return settings.Defaults(), nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memSettings) Save(s settings.Settings) error {
	m.saved = append(m.saved, s)
	return nil
}

func seed(t *testing.T, v store.Vault, p, text string) {
	t.Helper()
	_, err := v.Create(context.Background(), p, text)
	require.NoError(t, err)
}

func fileText(t *testing.T, v store.Vault, p string) string {
	t.Helper()
	ctx := context.Background()
	f, err := v.Lookup(ctx, p)
	require.NoError(t, err)
	require.NotNil(t, f, "expected %s to exist", p)
	text, err := v.Read(ctx, f)
	require.NoError(t, err)
	return text
}

func openService(t *testing.T, text string) (*Service, store.Vault) {
	t.Helper()
	v := store.NewMemVault()
	if text != "" {
		seed(t, v, settings.DefaultFilePath, text)
	}
	s := New(v, settings.Defaults(), nil, nil)
	require.NoError(t, s.Open(context.Background()))
	return s, v
}

func TestNotOpen(t *testing.T) {
	s := New(store.NewMemVault(), settings.Defaults(), nil, nil)
	_, err := s.AddList(context.Background(), "x")
	require.True(t, errors.Is(err, ErrNotOpen))
}

func TestAddListPersists(t *testing.T) {
	s, v := openService(t, "")
	ctx := context.Background()

	i, err := s.AddList(ctx, "  Groceries ")
	require.NoError(t, err)
	require.Equal(t, 0, i)

	_, err = s.AddItem(ctx, 0, " milk")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, 0, "eggs ")
	require.NoError(t, err)

	require.Equal(t, groceries, fileText(t, v, settings.DefaultFilePath))
}

func TestBlankAddIsNoop(t *testing.T) {
	s, v := openService(t, "")
	ctx := context.Background()

	i, err := s.AddList(ctx, "   ")
	require.NoError(t, err)
	require.Equal(t, -1, i)
	require.True(t, s.Lists().Empty())

	f, err := v.Lookup(ctx, settings.DefaultFilePath)
	require.NoError(t, err)
	require.Nil(t, f, "nothing should be written")
}

func TestAddItemBadList(t *testing.T) {
	s, _ := openService(t, groceries)
	_, err := s.AddItem(context.Background(), 3, "bread")
	require.True(t, errors.Is(err, collection.ErrListIndex))
}

func TestListsIsACopy(t *testing.T) {
	s, _ := openService(t, groceries)
	c := s.Lists()
	c[0].Items[0].Content = "changed"
	require.Equal(t, "milk", s.Lists()[0].Items[0].Content)
}

func TestMoveItemPersists(t *testing.T) {
	s, v := openService(t, groceries)
	require.NoError(t, s.MoveItem(context.Background(), 0, 1, 0))
	require.Equal(t, "## Groceries <!-- expanded:true -->\n\n- eggs\n- milk\n",
		fileText(t, v, settings.DefaultFilePath))
}

func TestInvalidMoveLeavesFileAlone(t *testing.T) {
	s, v := openService(t, groceries)
	err := s.MoveList(context.Background(), 0, 0)
	require.True(t, errors.Is(err, collection.ErrInvalidMove))
	require.Equal(t, groceries, fileText(t, v, settings.DefaultFilePath))
}

func TestEditItemEmptyDeletes(t *testing.T) {
	s, v := openService(t, groceries)
	res, err := s.EditItem(context.Background(), 0, 0, "  ")
	require.NoError(t, err)
	require.Equal(t, collection.EditDeleted, res)
	require.Equal(t, "## Groceries <!-- expanded:true -->\n\n- eggs\n",
		fileText(t, v, settings.DefaultFilePath))
}

func TestToggleExpandedPersists(t *testing.T) {
	s, v := openService(t, groceries)
	expanded, err := s.ToggleExpanded(context.Background(), 0)
	require.NoError(t, err)
	require.False(t, expanded)
	require.Equal(t, "## Groceries <!-- expanded:false -->\n\n- milk\n- eggs\n",
		fileText(t, v, settings.DefaultFilePath))
}

func TestDeleteLastListKeepsFile(t *testing.T) {
	s, v := openService(t, groceries)
	require.NoError(t, s.DeleteList(context.Background(), 0))
	require.True(t, s.Lists().Empty())
	// Writing an empty collection over a file with lists is refused.
	require.Equal(t, groceries, fileText(t, v, settings.DefaultFilePath))
	require.Equal(t, int64(1), s.Guard.Skipped())
}

func TestConfirmDeleteList(t *testing.T) {
	s, _ := openService(t, groceries+"\n## Chores <!-- expanded:true -->\n\n")
	d := &scriptedDialog{}
	s.Dialog = d
	ctx := context.Background()

	deleted, err := s.ConfirmDeleteList(ctx, 0)
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, []string{`Delete list "Groceries"?`}, d.messages)
	require.Equal(t, 2, s.Lists().Len())

	d.confirm = true
	deleted, err = s.ConfirmDeleteList(ctx, 0)
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, "Chores", s.Lists()[0].Name)
}

func TestPromptRenameList(t *testing.T) {
	s, _ := openService(t, groceries)
	d := &scriptedDialog{answer: "Shopping", ok: true}
	s.Dialog = d

	changed, err := s.PromptRenameList(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []string{"Groceries"}, d.initial)
	require.Equal(t, "Shopping", s.Lists()[0].Name)
}

func TestPromptCancelled(t *testing.T) {
	s, _ := openService(t, groceries)
	s.Dialog = &scriptedDialog{answer: "ignored", ok: false}
	ctx := context.Background()

	i, err := s.PromptAddItem(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, -1, i)

	res, err := s.PromptEditItem(ctx, 0, 1)
	require.NoError(t, err)
	require.Equal(t, collection.EditNone, res)
	require.Len(t, s.Lists()[0].Items, 2)
}

func TestPromptWithoutDialog(t *testing.T) {
	s, _ := openService(t, groceries)
	_, err := s.PromptAddList(context.Background())
	require.Error(t, err)
}

func TestUpdateSettingsReloads(t *testing.T) {
	v := store.NewMemVault()
	seed(t, v, settings.DefaultFilePath, groceries)
	seed(t, v, "other.md", "## Chores <!-- expanded:false -->\n\n- sweep\n")
	ss := &memSettings{}
	s := New(v, settings.Defaults(), nil, nil)
	s.Settings = ss
	ctx := context.Background()
	require.NoError(t, s.Open(ctx))

	require.NoError(t, s.UpdateSettings(ctx, s.Current().WithFilePath("other.md")))
	require.Equal(t, "Chores", s.Lists()[0].Name)
	require.Equal(t, "other.md", s.Guard.Path())
	require.Len(t, ss.saved, 1)

	_, err := s.AddItem(ctx, 0, "dust")
	require.NoError(t, err)
	require.Equal(t, groceries, fileText(t, v, settings.DefaultFilePath))
	require.Equal(t, "## Chores <!-- expanded:false -->\n\n- sweep\n- dust\n", fileText(t, v, "other.md"))
}

func TestSyncSettings(t *testing.T) {
	v := store.NewMemVault()
	seed(t, v, settings.DefaultFilePath, groceries)
	seed(t, v, "other.md", "## Chores <!-- expanded:false -->\n\n- sweep\n")
	ss := &memSettings{}
	s := New(v, settings.Defaults(), nil, nil)
	s.Settings = ss
	ctx := context.Background()
	require.NoError(t, s.Open(ctx))

	changed, err := s.SyncSettings(ctx)
	require.NoError(t, err)
	require.False(t, changed)

	ss.saved = append(ss.saved, settings.Defaults().WithFilePath("other.md"))
	changed, err = s.SyncSettings(ctx)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "other.md", s.Guard.Path())
	require.Equal(t, "Chores", s.Lists()[0].Name)
	require.Len(t, ss.saved, 1, "syncing must not save back")

	ss.saved = append(ss.saved, settings.Defaults().WithFilePath("/abs.md"))
	_, err = s.SyncSettings(ctx)
	require.Error(t, err)
	require.Equal(t, "other.md", s.Current().FilePath)
}

func TestUpdateSettingsRejectsInvalid(t *testing.T) {
	s, _ := openService(t, groceries)
	err := s.UpdateSettings(context.Background(), s.Current().WithFilePath("/etc/passwd"))
	require.Error(t, err)
	require.Equal(t, settings.DefaultFilePath, s.Guard.Path())
}

func TestWriteFailureNotifies(t *testing.T) {
	v := &readOnlyVault{Vault: store.NewMemVault()}
	var notes []string
	s := New(v, settings.Defaults(), nil, store.NotifierFunc(func(msg string) {
		notes = append(notes, msg)
	}))
	ctx := context.Background()
	require.NoError(t, s.Open(ctx))

	_, err := s.AddList(ctx, "Groceries")
	require.Error(t, err)
	require.Len(t, notes, 1)
	// The model keeps the change.
	require.Equal(t, 1, s.Lists().Len())
}

type readOnlyVault struct {
	store.Vault
}

func (readOnlyVault) Create(context.Context, string, string) (*store.File, error) {
	return nil, errors.New("read-only")
}
