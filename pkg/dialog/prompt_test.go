package dialog

import (
	"context"
	"testing"
)

func TestConfirmYes(t *testing.T) {
	d := &Terminal{Yes: true}
	ok, err := d.Confirm(context.Background(), "Delete list \"Groceries\"?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("--yes should confirm")
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &Terminal{Yes: true}
	if _, err := d.Confirm(ctx, "?"); err == nil {
		t.Fatalf("expected context error")
	}
	if _, _, err := d.Prompt(ctx, "name", ""); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestSelectNothing(t *testing.T) {
	d := &Terminal{}
	i, ok, err := d.Select(context.Background(), "List", nil)
	if err != nil || ok || i != -1 {
		t.Fatalf("got %d %v %v", i, ok, err)
	}
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"y": true, "Yes": true, "no": false, "0": false} {
		got, err := ParseBool(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatalf("expected error for maybe")
	}
}
