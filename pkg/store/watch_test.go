package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchEmitsFileChanges(t *testing.T) {
	base := t.TempDir()
	v := NewVault(base)
	target := v.Abs("lists.md")
	if target != filepath.Join(base, "lists.md") {
		t.Fatalf("unexpected abs path %q", target)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, target, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(base, "unrelated.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write unrelated: %v", err)
	}
	if _, err := v.Create(ctx, "lists.md", "## A <!-- expanded:true -->\n\n"); err != nil {
		t.Fatalf("create: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type != EventFileChanged {
				t.Fatalf("expected change event, got %+v", evt)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for file change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, filepath.Join(t.TempDir(), "lists.md"), nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			// A buffered event is fine, the close must follow.
			<-ch
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
