package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/byterings/hugoctl/internal/platform"
)

const (
	ConfigFileName    = "config.toml"
	InventoryFileName = "inventory.toml"
)

// GetConfigDirName returns the config directory name
func GetConfigDirName() string {
	return platform.GetConfigDirName()
}

// GetConfigDir returns the path to the hugoctl config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, GetConfigDirName()), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// GetInventoryPath returns the path to the inventory file kept alongside
// the config
func GetInventoryPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, InventoryFileName), nil
}

// ConfigExists checks if the config file exists
func ConfigExists() (bool, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(configPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// CreateConfigDir creates the hugoctl config directory
func CreateConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return platform.MkdirSecure(configDir)
}

// NewConfig creates a new config with defaults filled in
func NewConfig() *Config {
	return &Config{
		Version:        "1.0",
		CommandTimeout: DefaultCommandTimeout,
	}
}

// LoadConfig loads the config from file. Tilde-prefixed paths are expanded
// in memory; the file itself is left as the user wrote it.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if config.CommandTimeout <= 0 {
		config.CommandTimeout = DefaultCommandTimeout
	}
	if config.SitesRoot, err = platform.ExpandTilde(config.SitesRoot); err != nil {
		return nil, fmt.Errorf("failed to expand sites_root: %w", err)
	}
	if config.ThemesRoot, err = platform.ExpandTilde(config.ThemesRoot); err != nil {
		return nil, fmt.Errorf("failed to expand themes_root: %w", err)
	}
	if config.HugoPath, err = platform.ExpandTilde(config.HugoPath); err != nil {
		return nil, fmt.Errorf("failed to expand hugo_path: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the config to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	f, err := platform.OpenFileSecure(configPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
