package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory of hcl files

	LogFormat  string
	LogLevel   string
	TermWidth  int
	TermHeight int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.TermWidth <= 0 {
		cfg.TermWidth = 80
	}
	if cfg.TermHeight <= 0 {
		cfg.TermHeight = 24
	}
	return &cfg, nil
}
