// Package tui is the terminal sidebar. It draws the lists from app.View and
// maps keys and mouse drags onto the service and the reorder protocol.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/reorder"
	"tableflip.dev/sidelist/pkg/store"
	"tableflip.dev/sidelist/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
	modeConfirm
)

type inputAction int

const (
	actionAddList inputAction = iota
	actionAddItem
	actionRenameList
	actionEditItem
	actionFilePath
)

// row addresses one rendered line by committed indices.
type row struct {
	list int
	item int // -1 for a list header
}

func (r row) header() bool { return r.item < 0 }

// fileChangedMsg reports an external change to the backing file. gen
// identifies the watch it came from.
type fileChangedMsg struct {
	store.Event
	gen int
}

// settingsChangedMsg reports that the stored settings changed on disk.
type settingsChangedMsg store.Event

// WatchFunc streams change events for the OS file at path until ctx is done.
type WatchFunc func(ctx context.Context, path string) (<-chan store.Event, error)

// Options configure a Model.
type Options struct {
	Log     *zap.Logger
	Notices *Notices
	// Watch, when set, follows the backing file and reloads on external
	// edits. The watch moves with the file when its path changes.
	Watch WatchFunc
	// SettingsPath is the stored settings file. With Watch set, settings
	// saved elsewhere are applied to the running sidebar.
	SettingsPath string
	Palette      *theme.Palette
}

// Model is the Bubble Tea model of the sidebar.
type Model struct {
	ctx     context.Context
	svc     *app.Service
	log     *zap.Logger
	notices *Notices

	watch     WatchFunc
	watching  string
	watchGen  int
	stopWatch context.CancelFunc
	events    <-chan store.Event
	settings  <-chan store.Event
	settingsP string

	theme theme.Theme
	keys  keyMap
	help  help.Model

	view   app.View
	rows   []row
	cursor int
	offset int
	width  int
	height int

	gesture   reorder.Gesture
	mouseDrag bool

	mode   mode
	action inputAction
	target row
	input  textinput.Model

	status string
	failed bool
	// stale is set when the file changed while the user was busy.
	stale bool
	// staleSettings is set when the settings changed while the user was busy.
	staleSettings bool
}

// New builds the sidebar for an open service.
func New(ctx context.Context, svc *app.Service, opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	var p theme.Palette
	if opts.Palette != nil {
		p = *opts.Palette
	} else {
		p = theme.DetectPalette()
	}

	ti := textinput.New()
	ti.CharLimit = 512

	m := &Model{
		ctx:     ctx,
		svc:     svc,
		log:     log,
		notices: opts.Notices,
		watch:   opts.Watch,
		theme:   theme.Default(p),
		keys:    defaultKeys(),
		help:    help.New(),
		input:   ti,

		watching:  svc.WatchPath(),
		settingsP: opts.SettingsPath,
	}
	m.refresh()
	return m
}

// Init starts the file watches.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.follow(m.svc.WatchPath()), m.watchSettings())
}

// follow moves the backing file watch to path. Events from earlier watches
// are dropped by generation.
func (m *Model) follow(path string) tea.Cmd {
	if m.stopWatch != nil {
		m.stopWatch()
		m.stopWatch = nil
	}
	m.events = nil
	m.watching = path
	m.watchGen++
	if m.watch == nil || path == "" {
		return nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	events, err := m.watch(ctx, path)
	if err != nil {
		cancel()
		m.log.Warn("not watching backing file", zap.String("path", path), zap.Error(err))
		return nil
	}
	m.stopWatch, m.events = cancel, events
	m.log.Debug("watching backing file", zap.String("path", path))
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events, gen := m.events, m.watchGen
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return fileChangedMsg{Event: ev, gen: gen}
	}
}

func (m *Model) watchSettings() tea.Cmd {
	if m.watch == nil || m.settingsP == "" {
		return nil
	}
	events, err := m.watch(m.ctx, m.settingsP)
	if err != nil {
		m.log.Warn("not watching settings", zap.String("path", m.settingsP), zap.Error(err))
		return nil
	}
	m.settings = events
	return m.waitForSettings()
}

func (m *Model) waitForSettings() tea.Cmd {
	if m.settings == nil {
		return nil
	}
	events := m.settings
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return settingsChangedMsg(ev)
	}
}

// Update handles one message. Whatever it does, the watch ends up on the
// current backing file.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	if p := m.svc.WatchPath(); p != m.watching {
		cmd = tea.Batch(cmd, m.follow(p))
	}
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-20, 10)
		m.scroll()
		return m, nil

	case fileChangedMsg:
		if msg.gen != m.watchGen {
			return m, nil
		}
		m.log.Debug("backing file changed", zap.String("path", msg.Path))
		if m.busy() {
			m.stale = true
		} else {
			m.reload()
		}
		return m, m.waitForChange()

	case settingsChangedMsg:
		m.log.Debug("settings changed", zap.String("path", msg.Path))
		if m.busy() {
			m.staleSettings = true
		} else {
			m.syncSettings()
		}
		return m, m.waitForSettings()

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		if m.gesture.Active() {
			return m.updateDrag(msg)
		}
		return m.updateNormal(msg)

	case tea.MouseMsg:
		if m.mode != modeNormal {
			return m, nil
		}
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m *Model) busy() bool {
	return m.mode != modeNormal || m.gesture.Active()
}

// refresh rebuilds the rows from the model, with the drag preview applied.
func (m *Model) refresh() {
	v := m.svc.Render()
	if order := m.gesture.Order(); order != nil {
		snap := m.gesture.Snapshot()
		if snap.Kind == reorder.KindList {
			v = app.Reordered(v, -1, order)
		} else {
			v = app.Reordered(v, snap.OriginList, order)
		}
	}
	m.view = v
	m.rows = m.rows[:0]
	for _, l := range v.Lists {
		m.rows = append(m.rows, row{list: l.Index, item: -1})
		for _, it := range l.Items {
			m.rows = append(m.rows, row{list: l.Index, item: it.Index})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

func (m *Model) reload() {
	m.stale = false
	if err := m.svc.Reload(m.ctx); err != nil {
		m.fail(err)
		return
	}
	m.refresh()
}

// syncSettings applies settings another process saved.
func (m *Model) syncSettings() {
	m.staleSettings = false
	prev := m.svc.Current().FilePath
	changed, err := m.svc.SyncSettings(m.ctx)
	switch {
	case err != nil:
		m.fail(err)
	case changed && m.svc.Current().FilePath != prev:
		m.stale = false
		m.cursor = 0
		m.setStatus("showing %s", m.svc.Current().FilePath)
	}
	m.refresh()
}

// catchUp applies changes that arrived while the user was busy.
func (m *Model) catchUp() {
	if m.staleSettings {
		m.syncSettings()
	}
	if m.stale {
		m.reload()
	}
}

// settle runs after a modal or a drag ends.
func (m *Model) settle() {
	if m.stale || m.staleSettings {
		m.catchUp()
		return
	}
	m.refresh()
}

func (m *Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) focus(r row) {
	for i, x := range m.rows {
		if x == r {
			m.cursor = i
			m.scroll()
			return
		}
	}
}

func (m *Model) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.failed = false
}

// fail shows err, preferring the notification the guard raised for it.
func (m *Model) fail(err error) {
	msg := m.notices.Take()
	if msg == "" {
		msg = err.Error()
	}
	m.log.Warn("action failed", zap.Error(err))
	m.status = msg
	m.failed = true
}

// done reports the result of a service call and re-renders.
func (m *Model) done(err error, format string, args ...interface{}) {
	if err != nil {
		m.fail(err)
	} else if msg := m.notices.Take(); msg != "" {
		m.status, m.failed = msg, true
	} else {
		m.setStatus(format, args...)
	}
	m.refresh()
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	r, ok := m.current()

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
			m.scroll()
		}

	case key.Matches(msg, k.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.scroll()
		}

	case key.Matches(msg, k.Reload):
		m.reload()
		if !m.failed {
			m.setStatus("reloaded %s", m.svc.Current().FilePath)
		}

	case key.Matches(msg, k.AddList):
		m.openInput(actionAddList, row{list: -1, item: -1}, "New list", "")

	case key.Matches(msg, k.File):
		m.openInput(actionFilePath, row{list: -1, item: -1}, "File", m.svc.Current().FilePath)

	case key.Matches(msg, k.Dividers):
		s := m.svc.Current()
		err := m.svc.UpdateSettings(m.ctx, s.WithShowDividers(!s.ShowDividers))
		m.done(err, "dividers %s", onOff(!s.ShowDividers))

	case key.Matches(msg, k.Shading):
		s := m.svc.Current()
		err := m.svc.UpdateSettings(m.ctx, s.WithAlternateBackground(!s.AlternateBackground))
		m.done(err, "alternate background %s", onOff(!s.AlternateBackground))

	case !ok:
		// Everything below acts on the row under the cursor.

	case key.Matches(msg, k.Toggle):
		if !r.header() && msg.String() == "enter" {
			m.editRow(r)
			break
		}
		m.toggle(r.list, nil)

	case key.Matches(msg, k.Collapse):
		f := false
		m.toggle(r.list, &f)

	case key.Matches(msg, k.Expand):
		t := true
		m.toggle(r.list, &t)

	case key.Matches(msg, k.AddItem):
		name, _ := m.svc.ListName(r.list)
		m.openInput(actionAddItem, row{list: r.list, item: -1}, "Add to "+name, "")

	case key.Matches(msg, k.Edit):
		m.editRow(r)

	case key.Matches(msg, k.Delete):
		if r.header() {
			m.mode = modeConfirm
			m.target = r
			return m, nil
		}
		err := m.svc.DeleteItem(m.ctx, r.list, r.item)
		m.done(err, "item deleted")

	case key.Matches(msg, k.Grab):
		m.grab(r, false)
	}
	return m, nil
}

func (m *Model) editRow(r row) {
	if r.header() {
		name, _ := m.svc.ListName(r.list)
		m.openInput(actionRenameList, r, "Rename", name)
		return
	}
	content, _ := m.svc.ItemContent(r.list, r.item)
	m.openInput(actionEditItem, r, "Edit (empty deletes)", content)
}

// toggle flips a list, or sets it when want is non-nil.
func (m *Model) toggle(list int, want *bool) {
	if want != nil {
		for _, l := range m.view.Lists {
			if l.Index == list && l.Expanded == *want {
				return
			}
		}
	}
	expanded, err := m.svc.ToggleExpanded(m.ctx, list)
	m.done(err, "%s", map[bool]string{true: "expanded", false: "collapsed"}[expanded])
	m.focus(row{list: list, item: -1})
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m *Model) openInput(a inputAction, target row, prompt, initial string) {
	m.mode = modeInput
	m.action = a
	m.target = target
	m.input.Prompt = prompt + ": "
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
	m.settle()
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		value := m.input.Value()
		m.mode = modeNormal
		m.input.Blur()
		m.input.Reset()
		m.submit(value)
		m.catchUp()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(value string) {
	t := m.target
	switch m.action {
	case actionAddList:
		i, err := m.svc.AddList(m.ctx, value)
		m.done(err, "list added")
		if err == nil && i >= 0 {
			m.focus(row{list: i, item: -1})
		}
	case actionAddItem:
		i, err := m.svc.AddItem(m.ctx, t.list, value)
		m.done(err, "item added")
		if err == nil && i >= 0 {
			m.focus(row{list: t.list, item: i})
		}
	case actionRenameList:
		_, err := m.svc.RenameList(m.ctx, t.list, value)
		m.done(err, "list renamed")
	case actionEditItem:
		res, err := m.svc.EditItem(m.ctx, t.list, t.item, value)
		m.done(err, "item %s", res)
	case actionFilePath:
		m.switchFile(value)
	}
}

// switchFile points the sidebar at another backing file in the vault.
func (m *Model) switchFile(p string) {
	p = strings.TrimSpace(p)
	cur := m.svc.Current()
	if p == "" || p == cur.FilePath {
		m.refresh()
		return
	}
	if err := m.svc.UpdateSettings(m.ctx, cur.WithFilePath(p)); err != nil {
		m.done(err, "")
		return
	}
	// The new file is already loaded.
	m.stale = false
	m.cursor = 0
	m.done(nil, "showing %s", p)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeNormal
		err := m.svc.DeleteList(m.ctx, m.target.list)
		m.done(err, "list deleted")
		m.catchUp()
	case key.Matches(msg, m.keys.Deny):
		m.mode = modeNormal
		m.setStatus("kept list")
		m.settle()
	}
	return m, nil
}

// grab starts dragging the element at r.
func (m *Model) grab(r row, mouse bool) {
	var err error
	if r.header() {
		err = m.gesture.Start(reorder.KindList, -1, r.list, len(m.view.Lists))
	} else {
		siblings := 0
		for _, l := range m.view.Lists {
			if l.Index == r.list {
				siblings = l.Count
			}
		}
		err = m.gesture.Start(reorder.KindItem, r.list, r.item, siblings)
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.mouseDrag = mouse
	if !mouse {
		m.setStatus("moving %s: ↑/↓ to place, space to drop, esc to cancel", m.gesture.Snapshot().Kind)
	}
}

func (m *Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Cancel):
		m.gesture.Cancel()
		m.finish(true)
		m.setStatus("move cancelled")
	case key.Matches(msg, k.Up):
		m.step(-1)
	case key.Matches(msg, k.Down):
		m.step(1)
	case key.Matches(msg, k.Drop):
		m.drop(m.gesture.Snapshot().OriginList)
	case key.Matches(msg, k.Quit):
		m.gesture.Cancel()
		m.finish(true)
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) step(delta int) {
	m.gesture.Step(delta)
	m.refresh()
	m.followDragged()
}

// followDragged puts the cursor on the element being dragged.
func (m *Model) followDragged() {
	snap := m.gesture.Snapshot()
	if snap.Kind == reorder.KindList {
		m.focus(row{list: snap.Origin, item: -1})
		return
	}
	m.focus(row{list: snap.OriginList, item: snap.Origin})
}

// drop commits the preview on targetList and ends the gesture.
func (m *Model) drop(targetList int) {
	snap := m.gesture.Snapshot()
	out, err := m.gesture.Drop(m.ctx, targetList, m.svc)
	if err != nil {
		m.fail(err)
	} else if msg := m.notices.Take(); msg != "" {
		m.status, m.failed = msg, true
	} else if out.Committed {
		m.setStatus("moved %s to %d", snap.Kind, snap.Hover)
	}
	committed := m.gesture.End().Committed
	m.mouseDrag = false
	m.settle()
	if committed {
		if snap.Kind == reorder.KindList {
			m.focus(row{list: snap.Hover, item: -1})
		} else {
			m.focus(row{list: snap.OriginList, item: snap.Hover})
		}
	}
}

// finish ends a gesture that did not drop, rolling the preview back.
func (m *Model) finish(keepCursor bool) {
	snap := m.gesture.Snapshot()
	m.gesture.End()
	m.mouseDrag = false
	m.settle()
	if keepCursor {
		if snap.Kind == reorder.KindList {
			m.focus(row{list: snap.Origin, item: -1})
		} else {
			m.focus(row{list: snap.OriginList, item: snap.Origin})
		}
	}
}
