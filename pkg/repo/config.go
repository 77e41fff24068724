package repo

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultDateFormat renders commit timestamps in their recorded zone offset.
const DefaultDateFormat = "2006-01-02 15:04:05 -0700"

// Config holds viewer settings read from a gitview.toml file. It only shapes
// presentation (date rendering, log length); the decoding core never
// consults it.
type Config struct {
	DateFormat string `toml:"date_format"`
	LogLimit   int    `toml:"log_limit"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DateFormat: DefaultDateFormat,
		LogLimit:   0, // unbounded
	}
}

// LoadConfig reads a TOML config file. A missing file returns defaults;
// malformed TOML or unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}

	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}
	if cfg.LogLimit < 0 {
		cfg.LogLimit = 0
	}
	return cfg, nil
}
