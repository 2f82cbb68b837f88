package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// config is the mbk.toml file in the user config directory.
type config struct {
	StorePath  string `toml:"store_path"`  // database file location
	Currency   string `toml:"currency"`    // currency for fresh documents
	Style      string `toml:"style"`       // glamour style for reports
	DebounceMS int    `toml:"debounce_ms"` // quiet time before a save
}

const defaultConfigTOML = `# mbk configuration

# Where the database lives. Empty means <config dir>/moneybook.db.
store_path = ""

# Currency used when creating a fresh document.
currency = "EUR"

# Markdown rendering style: auto, dark, light or notty.
style = "auto"

# How long to wait after the last change before saving, in milliseconds.
debounce_ms = 1000
`

func (c config) debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// configDir returns the mbk config directory, creating it if needed.
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	dir := filepath.Join(base, "moneybook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	return dir, nil
}

// loadConfig reads mbk.toml, writing the default file on first run.
func loadConfig() (config, error) {
	cfg := config{Currency: "EUR", Style: "auto", DebounceMS: 1000}

	dir, err := configDir()
	if err != nil {
		return cfg, err
	}
	path := filepath.Join(dir, "mbk.toml")

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); werr != nil {
			return cfg, fmt.Errorf("writing default config: %w", werr)
		}
		raw = []byte(defaultConfigTOML)
	} else if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = filepath.Join(dir, "moneybook.db")
	}
	return cfg, nil
}
