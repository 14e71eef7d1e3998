package cmd

import (
	"fmt"

	"github.com/byterings/hugoctl/internal/config"
	"github.com/byterings/hugoctl/internal/hugo"
	"github.com/byterings/hugoctl/internal/inventory"
)

// requireConfig loads the configuration, failing with a hint when hugoctl
// has not been initialized yet.
func requireConfig() (*config.Config, error) {
	exists, err := config.ConfigExists()
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, fmt.Errorf("hugoctl not initialized. Run 'hugoctl init' first")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// openStore opens the theme and site inventory kept in the config directory.
func openStore() (*inventory.Store, error) {
	path, err := config.GetInventoryPath()
	if err != nil {
		return nil, err
	}

	store, err := inventory.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}

	return store, nil
}

// newRunner builds a hugo runner from the configured binary path.
func newRunner(cfg *config.Config) (*hugo.Runner, error) {
	if cfg.HugoPath == "" {
		return nil, fmt.Errorf("hugo_path is not configured. Run 'hugoctl init' first")
	}

	return hugo.New(cfg.HugoPath, cfg.Timeout())
}
