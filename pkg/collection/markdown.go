package collection

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tableflip.dev/sidelist/pkg/entry"
)

// The markdown dialect is the only format ever written:
//
//	## Groceries <!-- expanded:true -->
//
//	- milk
//	- eggs
//
// Names and contents are written verbatim. A name or content containing a
// newline, or a name ending in an HTML comment, will not survive the next
// parse. See ValidateName and ValidateContent.

const (
	headingPrefix  = "## "
	bulletPrefix   = "- "
	expandedMarker = "expanded:true"
)

var headingPattern = regexp.MustCompile(`^## (.+?)(\s*<!--.*?-->)?$`)

// Marshal encodes the collection in the markdown dialect.
func Marshal(c Collection) string {
	var b strings.Builder
	for i, l := range c {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingPrefix)
		b.WriteString(l.Name)
		if l.Expanded {
			b.WriteString(" <!-- expanded:true -->\n\n")
		} else {
			b.WriteString(" <!-- expanded:false -->\n\n")
		}
		for _, it := range l.Items {
			b.WriteString(bulletPrefix)
			b.WriteString(it.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Unmarshal decodes text into a collection. It never fails: the legacy front
// matter block is tried first, then the markdown body, and anything
// unrecognised is skipped. Text without any list yields an empty collection.
func Unmarshal(text string) Collection {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	body := text
	if block, rest, ok := splitFrontMatter(text); ok {
		if lists := unmarshalFrontMatter(block); len(lists) > 0 {
			return lists
		}
		body = rest
	}
	return unmarshalBody(body)
}

func unmarshalBody(body string) Collection {
	lists := Collection{}
	var current *List
	for _, line := range strings.Split(body, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				lists = append(lists, *current)
			}
			current = &List{
				Name:     strings.TrimSpace(m[1]),
				Expanded: strings.Contains(m[2], expandedMarker),
				Items:    []entry.Item{},
			}
			continue
		}
		if current == nil {
			continue
		}
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, bulletPrefix) {
			current.Items = append(current.Items, entry.New(trimmed[len(bulletPrefix):]))
		}
	}
	if current != nil {
		lists = append(lists, *current)
	}
	return lists
}

var (
	// ErrUnsafeText marks names or contents that would not round trip.
	ErrUnsafeText = errors.New("collection: text would corrupt the list file")
)

// ValidateName reports whether a list name survives Marshal then Unmarshal.
func ValidateName(name string) error {
	switch {
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: list name contains a line break", ErrUnsafeText)
	case strings.Contains(name, "<!--"):
		return fmt.Errorf("%w: list name contains %q", ErrUnsafeText, "<!--")
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: list name has surrounding whitespace", ErrUnsafeText)
	}
	return nil
}

// ValidateContent reports whether item content survives Marshal then
// Unmarshal.
func ValidateContent(content string) error {
	switch {
	case strings.ContainsAny(content, "\r\n"):
		return fmt.Errorf("%w: item contains a line break", ErrUnsafeText)
	case strings.TrimSpace(content) != content:
		return fmt.Errorf("%w: item has surrounding whitespace", ErrUnsafeText)
	}
	return nil
}
