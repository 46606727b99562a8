// Package entry defines the leaf item stored inside a list.
package entry

import (
	"regexp"
	"strings"
)

// Item is one line of free text inside a list. It has no identity beyond its
// position in the owning list.
type Item struct {
	Content string `json:"content"`
}

// New returns an item holding the trimmed content.
func New(content string) Item {
	return Item{Content: strings.TrimSpace(content)}
}

// Link is a note reference found inside item content.
type Link struct {
	Target string `json:"target"`
	Alias  string `json:"alias,omitempty"`
}

// Label is the text a link should be displayed with.
func (l Link) Label() string {
	if l.Alias != "" {
		return l.Alias
	}
	return l.Target
}

var linkPattern = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]+))?\]\]`)

// Links returns the [[note]] and [[note|alias]] references embedded in the
// content, in order of appearance. Nothing about the stored content depends
// on them.
func (i Item) Links() []Link {
	matches := linkPattern.FindAllStringSubmatch(i.Content, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{
			Target: strings.TrimSpace(m[1]),
			Alias:  strings.TrimSpace(m[2]),
		})
	}
	return links
}

// Display replaces link tokens with their labels.
func (i Item) Display() string {
	return linkPattern.ReplaceAllStringFunc(i.Content, func(tok string) string {
		m := linkPattern.FindStringSubmatch(tok)
		return Link{Target: strings.TrimSpace(m[1]), Alias: strings.TrimSpace(m[2])}.Label()
	})
}

func (i Item) String() string {
	return i.Content
}
