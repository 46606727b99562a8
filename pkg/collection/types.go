// Package collection holds the ordered set of named lists managed by the
// sidebar, the positional operations that mutate it, and its markdown
// encoding.
package collection

import (
	"tableflip.dev/sidelist/pkg/entry"
)

// List is one named, collapsible list of items. Names are not required to be
// unique.
type List struct {
	Name     string       `json:"name"`
	Expanded bool         `json:"expanded"`
	Items    []entry.Item `json:"items"`
}

// Collection is the ordered set of lists. Slice order is both display and
// persistence order.
type Collection []List

// Len reports the number of lists.
func (c Collection) Len() int { return len(c) }

// Empty reports whether the collection holds no lists at all.
func (c Collection) Empty() bool { return len(c) == 0 }

// Clone returns a deep copy so callers can keep a snapshot across mutations.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, l := range c {
		out[i] = List{Name: l.Name, Expanded: l.Expanded}
		if l.Items != nil {
			out[i].Items = append([]entry.Item{}, l.Items...)
		}
	}
	return out
}

// Equal compares two collections by list order, names, flags and item order.
// A nil and an empty item slice are considered equal.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		a, b := c[i], other[i]
		if a.Name != b.Name || a.Expanded != b.Expanded || len(a.Items) != len(b.Items) {
			return false
		}
		for j := range a.Items {
			if a.Items[j] != b.Items[j] {
				return false
			}
		}
	}
	return true
}

// ItemCount returns the total number of items across every list.
func (c Collection) ItemCount() int {
	n := 0
	for _, l := range c {
		n += len(l.Items)
	}
	return n
}
