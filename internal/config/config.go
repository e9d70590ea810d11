package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cribalik/cmantic/internal/buffer"
	"github.com/cribalik/cmantic/internal/history"
)

// Config is the on-disk shape of the editor's settings file.
type Config struct {
	TabWidth       int    `toml:"tab_width"`
	DefaultTabType string `toml:"default_tab_type"` // "tabs" or a spaces count like "2", "4"
	MaxUndoGroups  int    `toml:"max_undo_groups"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		TabWidth:       8,
		DefaultTabType: "tabs",
		MaxUndoGroups:  history.DefaultMaxGroups,
	}
}

// Load reads and parses a TOML config file at path. A missing file is not
// an error: it returns Default().
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TabStyle translates DefaultTabType into a buffer.TabStyle value:
// buffer.TabHardTabs for "tabs", or the parsed space count otherwise.
func (c Config) TabStyle() int {
	if c.DefaultTabType == "tabs" || c.DefaultTabType == "" {
		return buffer.TabHardTabs
	}
	n := 0
	for _, ch := range c.DefaultTabType {
		if ch < '0' || ch > '9' {
			return buffer.TabHardTabs
		}
		n = n*10 + int(ch-'0')
	}
	if n <= 0 {
		return buffer.TabHardTabs
	}
	return n
}
