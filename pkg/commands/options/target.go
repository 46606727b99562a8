package options

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/sidelist/pkg/collection"
)

// ResolveList finds a list by index or, failing that, by name. Names match
// case-insensitively and the first match wins.
func ResolveList(c collection.Collection, arg string) (int, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		if i < 0 || i >= len(c) {
			return -1, fmt.Errorf("%w: %d of %d", collection.ErrListIndex, i, len(c))
		}
		return i, nil
	}
	for i, l := range c {
		if strings.EqualFold(l.Name, strings.TrimSpace(arg)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no list named %q", arg)
}

// ResolveItem parses an item index within list.
func ResolveItem(c collection.Collection, list int, arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return -1, fmt.Errorf("item must be an index: %q", arg)
	}
	if n := len(c[list].Items); i < 0 || i >= n {
		return -1, fmt.Errorf("%w: %d of %d in %q", collection.ErrItemIndex, i, n, c[list].Name)
	}
	return i, nil
}

// ParseIndex parses a destination index.
func ParseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return -1, fmt.Errorf("index must be a number: %q", arg)
	}
	return i, nil
}
