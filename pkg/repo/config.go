package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config stores display settings read from gitwalk.toml inside the .git
// directory. All fields are optional; zero values fall back to defaults.
type Config struct {
	Abbrev     int    `toml:"abbrev"`      // short hash length in log output
	DateFormat string `toml:"date_format"` // Go reference layout for commit dates
}

const (
	defaultAbbrev     = 8
	defaultDateFormat = "Mon Jan 2 15:04:05 2006 -0700"
)

func (r *Repo) configPath() string {
	return filepath.Join(r.GitDir, "gitwalk.toml")
}

// ReadConfig reads gitwalk.toml. A missing file yields the defaults; a
// present but unparseable file is an error.
func (r *Repo) ReadConfig() (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(r.configPath(), cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if cfg.Abbrev <= 0 {
		cfg.Abbrev = defaultAbbrev
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = defaultDateFormat
	}
	return cfg, nil
}
