package cmd

import (
	"fmt"

	"github.com/byterings/hugoctl/internal/config"
	"github.com/byterings/hugoctl/internal/platform"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show hugoctl and hugo versions",
	Long:  `Print the hugoctl version, plus the configured hugo binary's version when hugoctl has been initialized.`,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("hugoctl %s (%s)\n", rootCmd.Version, platform.GetPlatformName())

	// The hugo line is best-effort: before init there is nothing to probe
	exists, err := config.ConfigExists()
	if err != nil || !exists {
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil || cfg.HugoPath == "" {
		return nil
	}

	runner, err := newRunner(cfg)
	if err != nil {
		ui.Warning(err.Error())
		return nil
	}

	version, err := runner.Version()
	if err != nil {
		ui.Warning(fmt.Sprintf("Could not run hugo: %v", err))
		return nil
	}

	fmt.Printf("hugo    %s\n", version)
	if warning, err := runner.CheckVersion(); err == nil && warning != "" {
		ui.Warning(warning)
	}

	return nil
}
