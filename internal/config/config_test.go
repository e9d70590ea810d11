package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cribalik/cmantic/internal/buffer"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want Default()", cfg)
	}
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmantic.toml")
	body := "tab_width = 4\ndefault_tab_type = \"2\"\nmax_undo_groups = 50\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabWidth != 4 || cfg.MaxUndoGroups != 50 {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.TabStyle() != 2 {
		t.Fatalf("got tab style %d, want 2", cfg.TabStyle())
	}
}

func TestTabStyleTabsKeyword(t *testing.T) {
	cfg := Config{DefaultTabType: "tabs"}
	if cfg.TabStyle() != buffer.TabHardTabs {
		t.Fatalf("got %d, want TabHardTabs", cfg.TabStyle())
	}
}
