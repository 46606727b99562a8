package entry

import "testing"

func TestLinks(t *testing.T) {
	it := New("  read [[Project Plan]] and [[inbox|the inbox]] today ")
	if it.Content != "read [[Project Plan]] and [[inbox|the inbox]] today" {
		t.Fatalf("expected trimmed content, got %q", it.Content)
	}

	links := it.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Target != "Project Plan" || links[0].Label() != "Project Plan" {
		t.Fatalf("unexpected first link: %+v", links[0])
	}
	if links[1].Target != "inbox" || links[1].Label() != "the inbox" {
		t.Fatalf("unexpected second link: %+v", links[1])
	}
}

func TestLinksNone(t *testing.T) {
	if links := New("milk").Links(); links != nil {
		t.Fatalf("expected no links, got %v", links)
	}
}

func TestDisplay(t *testing.T) {
	it := Item{Content: "see [[a|Alpha]] then [[b]]"}
	if got := it.Display(); got != "see Alpha then b" {
		t.Fatalf("unexpected display %q", got)
	}
}
