package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/sidelist/pkg/reorder"
)

// Screen layout: a title line, the rows, then the status and help lines.
const (
	titleLines  = 1
	footerLines = 2
)

func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return len(m.rows)
	}
	return max(m.height-titleLines-footerLines, 1)
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	h := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset > max(len(m.rows)-h, 0) {
		m.offset = max(len(m.rows)-h, 0)
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// screenY is the terminal line of row i.
func (m *Model) screenY(i int) int {
	return titleLines + i - m.offset
}

// rowAt returns the row index drawn at line y, or -1.
func (m *Model) rowAt(y int) int {
	line := y - titleLines
	if line < 0 || line >= m.bodyHeight() {
		return -1
	}
	i := line + m.offset
	if i >= len(m.rows) {
		return -1
	}
	return i
}

// boxes returns the geometry of the dragged element's siblings in visual
// order, and the index of the dragged one among them.
func (m *Model) boxes() ([]reorder.Box, int) {
	snap := m.gesture.Snapshot()
	var out []reorder.Box
	dragged := -1
	if snap.Kind == reorder.KindList {
		for i, r := range m.rows {
			if !r.header() {
				out[len(out)-1].Height++
				continue
			}
			if r.list == snap.Origin {
				dragged = len(out)
			}
			out = append(out, reorder.Box{Top: float64(m.screenY(i)), Height: 1})
		}
		return out, dragged
	}
	for i, r := range m.rows {
		if r.header() || r.list != snap.OriginList {
			continue
		}
		if r.item == snap.Origin {
			dragged = len(out)
		}
		out = append(out, reorder.Box{Top: float64(m.screenY(i)), Height: 1})
	}
	return out, dragged
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.offset > 0 {
				m.offset--
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.offset < max(len(m.rows)-m.bodyHeight(), 0) {
				m.offset++
			}
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}
		if m.gesture.Active() {
			return m, nil
		}
		i := m.rowAt(msg.Y)
		if i < 0 {
			return m, nil
		}
		m.cursor = i
		r := m.rows[i]
		// The fold marker toggles instead of dragging.
		if r.header() && msg.X <= 1 {
			m.toggle(r.list, nil)
			return m, nil
		}
		m.grab(r, true)

	case tea.MouseActionMotion:
		if !m.mouseDrag || !m.gesture.Active() {
			return m, nil
		}
		i := m.rowAt(msg.Y)
		if i < 0 {
			return m, nil
		}
		boxes, dragged := m.boxes()
		if dragged < 0 {
			return m, nil
		}
		b := boxes[dragged]
		y := float64(msg.Y)
		switch {
		case y < b.Top:
		case y >= b.Top+b.Height:
			y++
		default:
			// Still over the dragged element.
			return m, nil
		}
		if m.gesture.Over(m.rows[i].list, boxes, y) == reorder.EffectNone {
			m.setStatus("items stay in their own list")
			return m, nil
		}
		m.status = ""
		m.refresh()
		m.followDragged()

	case tea.MouseActionRelease:
		if !m.mouseDrag || !m.gesture.Active() {
			return m, nil
		}
		i := m.rowAt(msg.Y)
		if i < 0 {
			m.gesture.DropOutside()
			m.finish(true)
			return m, nil
		}
		m.drop(m.rows[i].list)
	}
	return m, nil
}
