package config

import "errors"

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if cfg.Journal.Dir == "" {
		return errors.New("journal.dir is required")
	}
	if cfg.Snapshot.Dir == "" {
		return errors.New("snapshot.dir is required")
	}
	if cfg.Snapshot.SaveTimeout <= 0 {
		return errors.New("snapshot.save_timeout must be positive")
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log.level must be one of debug, info, warn, error")
	}

	return nil
}
