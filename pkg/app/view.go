package app

import (
	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/entry"
)

// View is what a surface draws. It is rebuilt from the model on every render
// and holds no state of its own.
type View struct {
	Lists []ListView
}

// ListView is one list header and, when expanded, its items.
type ListView struct {
	Index    int
	Name     string
	Expanded bool
	// Count is the number of items, shown even when collapsed.
	Count int
	Items []ItemView
}

// ItemView is one rendered item.
type ItemView struct {
	Index     int
	Content   string
	Display   string
	Links     []entry.Link
	Alternate bool
	Divider   bool
}

// Rows is the number of lines the view occupies, one per header and item.
func (v View) Rows() int {
	n := 0
	for _, l := range v.Lists {
		n += 1 + len(l.Items)
	}
	return n
}

// Render builds the view tree for the current collection.
func (s *Service) Render() View {
	return render(s.lists, s.current.ShowDividers, s.current.AlternateBackground)
}

func render(c collection.Collection, dividers, alternate bool) View {
	v := View{Lists: make([]ListView, 0, len(c))}
	for i, l := range c {
		lv := ListView{
			Index:    i,
			Name:     l.Name,
			Expanded: l.Expanded,
			Count:    len(l.Items),
		}
		if l.Expanded {
			lv.Items = make([]ItemView, 0, len(l.Items))
			for j, it := range l.Items {
				lv.Items = append(lv.Items, ItemView{
					Index:     j,
					Content:   it.Content,
					Display:   it.Display(),
					Links:     it.Links(),
					Alternate: alternate && j%2 == 1,
					Divider:   dividers && j < len(l.Items)-1,
				})
			}
		}
		v.Lists = append(v.Lists, lv)
	}
	return v
}

// Reordered returns v with the lists, or the items of one list, shown in a
// previewed order. order holds committed indices in visual order; Index
// fields keep pointing at the committed position. A nil order returns v
// unchanged.
func Reordered(v View, itemsOf int, order []int) View {
	if order == nil {
		return v
	}
	out := View{Lists: append([]ListView(nil), v.Lists...)}
	if itemsOf < 0 {
		if len(order) != len(v.Lists) {
			return v
		}
		for i, from := range order {
			out.Lists[i] = v.Lists[from]
		}
		return out
	}
	if itemsOf >= len(v.Lists) {
		return v
	}
	l := v.Lists[itemsOf]
	if len(order) != len(l.Items) {
		return v
	}
	items := make([]ItemView, len(order))
	for i, from := range order {
		it := l.Items[from]
		// Shading follows the row, not the item.
		it.Alternate = l.Items[i].Alternate
		it.Divider = l.Items[i].Divider
		items[i] = it
	}
	l.Items = items
	out.Lists[itemsOf] = l
	return out
}
