package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
)

const groceries = "## Groceries <!-- expanded:true -->\n\n- milk\n- eggs\n"

// setup points the CLI at a fresh vault and home and returns the vault.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	vault := filepath.Join(dir, "vault")
	home := filepath.Join(dir, "home")
	cfg := "vault: " + vault + "\nhome: " + home + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".sidelist.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SIDELIST_CONFIG_PATH", dir)
	return vault
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestAddListsAndItems(t *testing.T) {
	vault := setup(t)
	mustExecute(t, "add", "list", "Groceries")
	mustExecute(t, "add", "item", "Groceries", "milk")
	out := mustExecute(t, "add", "item", "0", "eggs")

	if !strings.Contains(out, "eggs") {
		t.Fatalf("expected the list to be printed, got:\n%s", out)
	}
	if got := read(t, filepath.Join(vault, "list-sidebar-data.md")); got != groceries {
		t.Fatalf("unexpected file:\n%s", got)
	}
}

func TestMoveEditDelete(t *testing.T) {
	vault := setup(t)
	file := filepath.Join(vault, "list-sidebar-data.md")
	mustExecute(t, "add", "list", "Groceries")
	mustExecute(t, "add", "item", "Groceries", "milk")
	mustExecute(t, "add", "item", "Groceries", "eggs")
	mustExecute(t, "add", "list", "Chores")

	mustExecute(t, "move", "item", "Groceries", "1", "0")
	mustExecute(t, "move", "list", "Chores", "0")
	if got := read(t, file); !strings.HasPrefix(got, "## Chores") || !strings.Contains(got, "- eggs\n- milk\n") {
		t.Fatalf("unexpected file after moves:\n%s", got)
	}

	mustExecute(t, "edit", "Groceries", "0", "")
	mustExecute(t, "toggle", "Groceries")
	mustExecute(t, "rename", "Groceries", "Shopping")
	want := "## Chores <!-- expanded:true -->\n\n\n## Shopping <!-- expanded:false -->\n\n- milk\n"
	if got := read(t, file); got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}

	mustExecute(t, "delete", "list", "Chores", "--yes")
	mustExecute(t, "delete", "item", "Shopping", "0")
	if got := read(t, file); got != "## Shopping <!-- expanded:false -->\n\n" {
		t.Fatalf("unexpected file after deletes:\n%q", got)
	}
}

func TestInvalidMoveFails(t *testing.T) {
	setup(t)
	mustExecute(t, "add", "list", "Groceries")
	if _, err := execute(t, "move", "list", "0", "0"); err == nil {
		t.Fatalf("moving a list onto itself should fail")
	}
	if _, err := execute(t, "move", "list", "0", "5"); err == nil {
		t.Fatalf("moving out of range should fail")
	}
}

func TestJSONErrors(t *testing.T) {
	setup(t)
	out, err := execute(t, "show", "Books", "--json")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(out, `{"error":"no list named \"Books\""}`) {
		t.Fatalf("expected a JSON error, got:\n%s", out)
	}
}

func TestShowJSON(t *testing.T) {
	setup(t)
	mustExecute(t, "add", "list", "Groceries")
	mustExecute(t, "add", "item", "Groceries", "see [[Recipes]]")
	out := mustExecute(t, "show", "--json")
	if !strings.Contains(out, `"see [[Recipes]]"`) {
		t.Fatalf("items are printed as written, got:\n%s", out)
	}
}

func TestSettingsSwitchFile(t *testing.T) {
	vault := setup(t)
	mustExecute(t, "add", "list", "Groceries")
	mustExecute(t, "settings", "set", "filePath", "other.md")
	if got := strings.TrimSpace(mustExecute(t, "settings", "get", "filePath")); got != "other.md" {
		t.Fatalf("filePath = %q", got)
	}

	mustExecute(t, "add", "list", "Chores")
	if got := read(t, filepath.Join(vault, "other.md")); got != "## Chores <!-- expanded:true -->\n\n" {
		t.Fatalf("unexpected other.md:\n%s", got)
	}
	if got := read(t, filepath.Join(vault, "list-sidebar-data.md")); !strings.HasPrefix(got, "## Groceries") {
		t.Fatalf("old file changed:\n%s", got)
	}

	if _, err := execute(t, "settings", "set", "filePath", "/abs.md"); err == nil {
		t.Fatalf("absolute paths should be rejected")
	}
}

func TestInfo(t *testing.T) {
	vault := setup(t)
	out := mustExecute(t, "info")
	if !strings.Contains(out, vault) || !strings.Contains(out, "not created yet") {
		t.Fatalf("unexpected info:\n%s", out)
	}
}

func TestRequiresArgs(t *testing.T) {
	setup(t)
	if _, err := execute(t, "add", "item", "Groceries"); err == nil {
		t.Fatalf("expected an argument error")
	}
}

func TestVersion(t *testing.T) {
	mustExecute(t, "version", "--short")
	if _, err := execute(t, "version", "-o", "xml"); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected an unknown format error, got %v", err)
	}
}

func TestBuildInfo(t *testing.T) {
	none := func() (*debug.BuildInfo, bool) { return nil, false }
	if v, c, d := buildInfo(none); v != "dev" || c != "none" || d != "unknown" {
		t.Fatalf("defaults = %s %s %s", v, c, d)
	}

	module := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v1.2.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2024-05-01T00:00:00Z"},
			},
		}, true
	}
	if v, c, d := buildInfo(module); v != "v1.2.0" || c != "abc123" || d != "2024-05-01T00:00:00Z" {
		t.Fatalf("from build info = %s %s %s", v, c, d)
	}

	devel := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	if v, _, _ := buildInfo(devel); v != "dev" {
		t.Fatalf("devel build should report dev, got %s", v)
	}
}
