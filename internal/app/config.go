package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PlanPath points at a plan file or a directory of .hcl plan files.
	PlanPath string
	// ListenAddr enables HTTP mode when non-empty, e.g. ":8080".
	ListenAddr string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. An App needs at least one mode of operation:
// a plan to schedule, a server to run, or both.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" && cfg.ListenAddr == "" {
		return nil, errors.New("either a plan path or a listen address is required")
	}
	return &cfg, nil
}
