package app

import (
	"testing"

	"tableflip.dev/sidelist/pkg/collection"
	"tableflip.dev/sidelist/pkg/entry"
)

func sample() collection.Collection {
	return collection.Collection{
		{Name: "Groceries", Expanded: true, Items: []entry.Item{{Content: "milk"}, {Content: "eggs"}, {Content: "see [[Recipes|the book]]"}}},
		{Name: "Chores", Expanded: false, Items: []entry.Item{{Content: "sweep"}}},
	}
}

func TestRenderCollapsedHidesItems(t *testing.T) {
	v := render(sample(), false, false)
	if len(v.Lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(v.Lists))
	}
	if got := len(v.Lists[1].Items); got != 0 {
		t.Fatalf("collapsed list rendered %d items", got)
	}
	if v.Lists[1].Count != 1 {
		t.Fatalf("collapsed list count = %d, want 1", v.Lists[1].Count)
	}
	if v.Rows() != 5 {
		t.Fatalf("rows = %d, want 5", v.Rows())
	}
}

func TestRenderShading(t *testing.T) {
	v := render(sample(), true, true)
	items := v.Lists[0].Items
	want := []bool{false, true, false}
	for i, it := range items {
		if it.Alternate != want[i] {
			t.Fatalf("item %d alternate = %v, want %v", i, it.Alternate, want[i])
		}
	}
	if !items[0].Divider || !items[1].Divider || items[2].Divider {
		t.Fatalf("dividers belong between items, got %+v", items)
	}

	plain := render(sample(), false, false)
	for _, it := range plain.Lists[0].Items {
		if it.Alternate || it.Divider {
			t.Fatalf("shading off, got %+v", it)
		}
	}
}

func TestRenderLinks(t *testing.T) {
	it := render(sample(), false, false).Lists[0].Items[2]
	if it.Display != "see the book" {
		t.Fatalf("display = %q", it.Display)
	}
	if len(it.Links) != 1 || it.Links[0].Target != "Recipes" {
		t.Fatalf("links = %+v", it.Links)
	}
}

func TestReorderedItems(t *testing.T) {
	v := render(sample(), false, true)
	r := Reordered(v, 0, []int{2, 0, 1})
	got := []string{}
	for _, it := range r.Lists[0].Items {
		got = append(got, it.Content)
	}
	want := []string{"see [[Recipes|the book]]", "milk", "eggs"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if r.Lists[0].Items[0].Index != 2 {
		t.Fatalf("index should stay committed, got %d", r.Lists[0].Items[0].Index)
	}
	if !r.Lists[0].Items[1].Alternate {
		t.Fatalf("shading follows the row")
	}
	if v.Lists[0].Items[0].Content != "milk" {
		t.Fatalf("input view was modified")
	}
}

func TestReorderedLists(t *testing.T) {
	v := render(sample(), false, false)
	r := Reordered(v, -1, []int{1, 0})
	if r.Lists[0].Name != "Chores" || r.Lists[0].Index != 1 {
		t.Fatalf("unexpected first list %+v", r.Lists[0])
	}
	if same := Reordered(v, -1, []int{0}); same.Lists[0].Name != "Groceries" {
		t.Fatalf("mismatched order should be ignored")
	}
	if same := Reordered(v, 0, nil); len(same.Lists) != 2 {
		t.Fatalf("nil order should return the view")
	}
}
