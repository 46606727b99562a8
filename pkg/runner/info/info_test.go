package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/settings"
	"tableflip.dev/sidelist/pkg/store"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	v := store.NewMemVault()
	if _, err := v.Create(ctx, settings.DefaultFilePath, "## Groceries <!-- expanded:true -->\n\n- milk\n"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := app.New(v, settings.Defaults(), nil, nil)
	if err := s.Open(ctx); err != nil {
		t.Fatalf("open: %v", err)
	}

	var buf bytes.Buffer
	i := Info{Config: store.StaticConfig("/vault", "/home"), Service: s, Out: &buf}
	if err := i.Do(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"/vault", settings.DefaultFilePath, "Lists:", "Items:"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, buf.String())
		}
	}
}
