package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/reorder"
)

// View draws the sidebar with the current file in its title.
func (m *Model) View() string {
	var b strings.Builder

	title := "Lists"
	if p := m.svc.Current().FilePath; p != "" {
		title += "  " + p
	}
	b.WriteString(m.theme.Title.Render(m.fit(title)))
	b.WriteByte('\n')

	lists := make(map[int]app.ListView, len(m.view.Lists))
	for _, l := range m.view.Lists {
		lists[l.Index] = l
	}

	h := m.bodyHeight()
	drawn := 0
	if len(m.rows) == 0 {
		b.WriteString(m.theme.List.Empty.Render("no lists, press A to add one"))
		b.WriteByte('\n')
		drawn++
	}
	for i := m.offset; i < len(m.rows) && drawn < h; i++ {
		b.WriteString(m.renderRow(i, lists))
		b.WriteByte('\n')
		drawn++
	}
	for ; drawn < h && m.height > 0; drawn++ {
		b.WriteByte('\n')
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) renderRow(i int, lists map[int]app.ListView) string {
	r := m.rows[i]
	plain, styled := m.rowText(r, lists[r.list])
	switch {
	case m.gesture.Active() && m.isDragged(r):
		return m.theme.List.Dragging.Render(plain)
	case i == m.cursor && m.mode == modeNormal:
		return m.theme.List.Cursor.Render(plain)
	}
	return styled
}

// rowText returns a row as plain text, for styles that replace its colors,
// and in its own styling.
func (m *Model) rowText(r row, l app.ListView) (string, string) {
	t := m.theme.List
	if r.header() {
		marker := "▾ "
		if !l.Expanded {
			marker = "▸ "
		}
		count := fmt.Sprintf(" %d", l.Count)
		name := m.fit(l.Name)
		return m.fit(marker + l.Name + count),
			t.Marker.Render(marker) + t.Header.Render(name) + t.Count.Render(count)
	}

	var it app.ItemView
	for _, x := range l.Items {
		if x.Index == r.item {
			it = x
			break
		}
	}
	body := t.Item
	if len(it.Links) > 0 {
		body = t.Link
	}
	if it.Alternate {
		body = body.Inherit(t.Alternate)
	}
	if it.Divider {
		body = body.Inherit(t.Divider)
	}
	text := m.fit("• " + it.Display)
	return "  " + text, "  " + body.Render(text)
}

func (m *Model) isDragged(r row) bool {
	snap := m.gesture.Snapshot()
	if snap.Kind == reorder.KindList {
		return r.header() && r.list == snap.Origin
	}
	return !r.header() && r.list == snap.OriginList && r.item == snap.Origin
}

// fit truncates s to the terminal width.
func (m *Model) fit(s string) string {
	if m.width <= 4 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width-2), "…")
}

func (m *Model) footer() string {
	f := m.theme.Footer
	var status string
	switch {
	case m.mode == modeInput:
		status = f.Prompt.Render(m.input.View())
	case m.mode == modeConfirm:
		name, _ := m.svc.ListName(m.target.list)
		status = f.Prompt.Render(fmt.Sprintf("Delete list %q? (y/n)", name))
	case m.failed:
		status = f.Error.Render(m.fit(m.status))
	default:
		status = f.Status.Render(m.fit(m.status))
	}

	var help string
	switch {
	case m.mode == modeInput:
		help = m.help.View(inputKeys{m.keys})
	case m.gesture.Active():
		help = m.help.View(dragKeys{m.keys})
	default:
		help = m.help.View(m.keys)
	}
	return status + "\n" + f.Help.Render(help)
}
