package collection

import (
	"errors"
	"fmt"

	"tableflip.dev/sidelist/pkg/entry"
)

var (
	// ErrListIndex is returned when a list index is outside the collection.
	ErrListIndex = errors.New("collection: list index out of range")
	// ErrItemIndex is returned when an item index is outside its list.
	ErrItemIndex = errors.New("collection: item index out of range")
	// ErrInvalidMove is returned for moves that are out of range or do not
	// change the position. The collection is left untouched.
	ErrInvalidMove = errors.New("collection: invalid move")
)

// EditResult describes what EditItem did.
type EditResult int

const (
	// EditNone means the content was unchanged.
	EditNone EditResult = iota
	// EditUpdated means the content was replaced.
	EditUpdated
	// EditDeleted means the empty edit removed the item.
	EditDeleted
)

func (r EditResult) String() string {
	switch r {
	case EditUpdated:
		return "updated"
	case EditDeleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

// MoveList removes the list at from and inserts it at to.
func (c *Collection) MoveList(from, to int) error {
	if !validMove(len(*c), from, to) {
		return fmt.Errorf("%w: list %d -> %d of %d", ErrInvalidMove, from, to, len(*c))
	}
	*c = move(*c, from, to)
	return nil
}

// MoveItem reorders items inside a single list. Items never change lists.
func (c *Collection) MoveItem(list, from, to int) error {
	l, err := c.list(list)
	if err != nil {
		return err
	}
	if !validMove(len(l.Items), from, to) {
		return fmt.Errorf("%w: item %d -> %d of %d in list %d", ErrInvalidMove, from, to, len(l.Items), list)
	}
	l.Items = move(l.Items, from, to)
	return nil
}

// InsertList appends a new, expanded, empty list and returns its index.
func (c *Collection) InsertList(name string) int {
	*c = append(*c, List{Name: name, Expanded: true, Items: []entry.Item{}})
	return len(*c) - 1
}

// InsertItem appends an item to the list and returns its index.
func (c *Collection) InsertItem(list int, content string) (int, error) {
	l, err := c.list(list)
	if err != nil {
		return -1, err
	}
	l.Items = append(l.Items, entry.Item{Content: content})
	return len(l.Items) - 1, nil
}

// RenameList replaces the name when it is non-empty and different. It reports
// whether anything changed.
func (c *Collection) RenameList(list int, name string) (bool, error) {
	l, err := c.list(list)
	if err != nil {
		return false, err
	}
	if name == "" || name == l.Name {
		return false, nil
	}
	l.Name = name
	return true, nil
}

// EditItem replaces the content of an item. Empty content deletes the item.
func (c *Collection) EditItem(list, item int, content string) (EditResult, error) {
	l, err := c.list(list)
	if err != nil {
		return EditNone, err
	}
	if item < 0 || item >= len(l.Items) {
		return EditNone, fmt.Errorf("%w: %d of %d in list %d", ErrItemIndex, item, len(l.Items), list)
	}
	switch {
	case content == "":
		l.Items = remove(l.Items, item)
		return EditDeleted, nil
	case content == l.Items[item].Content:
		return EditNone, nil
	default:
		l.Items[item].Content = content
		return EditUpdated, nil
	}
}

// DeleteList removes the list at index.
func (c *Collection) DeleteList(list int) error {
	if _, err := c.list(list); err != nil {
		return err
	}
	*c = remove(*c, list)
	return nil
}

// DeleteItem removes one item from a list.
func (c *Collection) DeleteItem(list, item int) error {
	l, err := c.list(list)
	if err != nil {
		return err
	}
	if item < 0 || item >= len(l.Items) {
		return fmt.Errorf("%w: %d of %d in list %d", ErrItemIndex, item, len(l.Items), list)
	}
	l.Items = remove(l.Items, item)
	return nil
}

// ToggleExpanded flips the expanded flag and returns the new value.
func (c *Collection) ToggleExpanded(list int) (bool, error) {
	l, err := c.list(list)
	if err != nil {
		return false, err
	}
	l.Expanded = !l.Expanded
	return l.Expanded, nil
}

func (c *Collection) list(i int) (*List, error) {
	if i < 0 || i >= len(*c) {
		return nil, fmt.Errorf("%w: %d of %d", ErrListIndex, i, len(*c))
	}
	return &(*c)[i], nil
}

func validMove(n, from, to int) bool {
	return from >= 0 && from < n && to >= 0 && to < n && from != to
}

func move[T any](s []T, from, to int) []T {
	v := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s[:to], append([]T{v}, s[to:]...)...)
	return s
}

func remove[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
