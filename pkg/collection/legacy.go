package collection

import (
	"regexp"
	"strings"

	"tableflip.dev/sidelist/pkg/entry"
)

// Older files kept their lists in a front matter block:
//
//	---
//	Groceries:
//	  expanded: false
//	  - milk
//	---
//
// It is only ever read. The first write rewrites the file as markdown.

var (
	frontMatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n`)
	legacyListPattern  = regexp.MustCompile(`^(\w+):$`)
)

const legacyExpandedKey = "expanded:"

// splitFrontMatter returns the block between the delimiters and the text that
// follows it.
func splitFrontMatter(text string) (block, rest string, ok bool) {
	loc := frontMatterPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", text, false
	}
	return text[loc[2]:loc[3]], text[loc[1]:], true
}

func unmarshalFrontMatter(block string) Collection {
	lists := Collection{}
	var current *List
	for _, line := range strings.Split(block, "\n") {
		if m := legacyListPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				lists = append(lists, *current)
			}
			current = &List{Name: m[1], Expanded: true, Items: []entry.Item{}}
			continue
		}
		// Lines before the first list header are malformed and skipped.
		if current == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, bulletPrefix):
			current.Items = append(current.Items, entry.Item{Content: trimmed[len(bulletPrefix):]})
		case strings.HasPrefix(trimmed, legacyExpandedKey):
			current.Expanded = strings.TrimSpace(trimmed[len(legacyExpandedKey):]) == "true"
		}
	}
	if current != nil {
		lists = append(lists, *current)
	}
	return lists
}
