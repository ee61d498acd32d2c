package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PackagePath string // step-module manifests
	ConfigPath  string // pipeline .cfg files

	LogFormat string
	LogLevel  string

	// ShowKnown prints the committed known-suffix list instead of running
	// discovery.
	ShowKnown bool

	// RemoveName, when set, applies suffix removal to the given basename
	// instead of running discovery.
	RemoveName string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PackagePath == "" && !cfg.ShowKnown && cfg.RemoveName == "" {
		return nil, errors.New("PackagePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
