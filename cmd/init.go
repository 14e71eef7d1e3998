package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/hugoctl/internal/config"
	"github.com/byterings/hugoctl/internal/hugo"
	"github.com/byterings/hugoctl/internal/platform"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initSitesRoot  string
	initThemesRoot string
	initHugoPath   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize hugoctl configuration",
	Long:  `Initialize hugoctl by choosing where sites and themes live and which hugo binary to use. Prompts interactively unless all flags are given.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initSitesRoot, "sites-root", "", "Directory holding managed site trees")
	initCmd.Flags().StringVar(&initThemesRoot, "themes-root", "", "Directory scanned for themes")
	initCmd.Flags().StringVar(&initHugoPath, "hugo-path", "", "Path to the hugo binary")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check if already initialized
	exists, err := config.ConfigExists()
	if err != nil {
		return fmt.Errorf("failed to check config: %w", err)
	}

	if exists {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("hugoctl is already initialized at: %s\n", configDir)
		return nil
	}

	sitesRoot := initSitesRoot
	themesRoot := initThemesRoot
	hugoPath := initHugoPath

	// Prompt for anything not covered by flags
	if sitesRoot == "" || themesRoot == "" || hugoPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		fmt.Println("Setting up hugoctl")
		fmt.Println()

		answers, err := ui.PromptInitSettings(
			filepath.Join(home, "hugo", "sites"),
			filepath.Join(home, "hugo", "themes"),
			platform.DefaultHugoPath(),
		)
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}

		if sitesRoot == "" {
			sitesRoot = answers.SitesRoot
		}
		if themesRoot == "" {
			themesRoot = answers.ThemesRoot
		}
		if hugoPath == "" {
			hugoPath = answers.HugoPath
		}
	}

	sitesRoot, err = platform.ExpandTilde(sitesRoot)
	if err != nil {
		return fmt.Errorf("failed to expand sites root: %w", err)
	}
	themesRoot, err = platform.ExpandTilde(themesRoot)
	if err != nil {
		return fmt.Errorf("failed to expand themes root: %w", err)
	}
	hugoPath, err = platform.ExpandTilde(hugoPath)
	if err != nil {
		return fmt.Errorf("failed to expand hugo path: %w", err)
	}

	// Create config directory
	if err := config.CreateConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create both content roots
	if err := platform.MkdirContent(sitesRoot); err != nil {
		return fmt.Errorf("failed to create sites root: %w", err)
	}
	if err := platform.MkdirContent(themesRoot); err != nil {
		return fmt.Errorf("failed to create themes root: %w", err)
	}

	cfg := config.NewConfig()
	cfg.SitesRoot = sitesRoot
	cfg.ThemesRoot = themesRoot
	cfg.HugoPath = hugoPath
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configDir, _ := config.GetConfigDir()
	ui.Success(fmt.Sprintf("hugoctl initialized at: %s", configDir))

	// Probe the binary so a wrong path surfaces now, not on first use
	if runner, err := hugo.New(hugoPath, cfg.Timeout()); err != nil {
		ui.Warning(err.Error())
	} else if version, err := runner.Version(); err != nil {
		ui.Warning(fmt.Sprintf("Could not run hugo: %v", err))
	} else {
		ui.Success(fmt.Sprintf("Found hugo %s", version))
		if warning, err := runner.CheckVersion(); err == nil && warning != "" {
			ui.Warning(warning)
		}
	}

	fmt.Println("\nNext: hugoctl sync")

	return nil
}
