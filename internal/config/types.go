package config

import "time"

// Config represents the hugoctl configuration
type Config struct {
	Version        string `toml:"version"`
	SitesRoot      string `toml:"sites_root"`      // Directory holding managed site trees
	ThemesRoot     string `toml:"themes_root"`     // Directory scanned for themes
	HugoPath       string `toml:"hugo_path"`       // Path to the hugo binary
	CommandTimeout int    `toml:"command_timeout"` // Seconds allowed per hugo invocation
}

// DefaultCommandTimeout is applied when no timeout is configured.
const DefaultCommandTimeout = 30

// Timeout returns the configured hugo command timeout as a duration.
func (c *Config) Timeout() time.Duration {
	seconds := c.CommandTimeout
	if seconds <= 0 {
		seconds = DefaultCommandTimeout
	}
	return time.Duration(seconds) * time.Second
}
