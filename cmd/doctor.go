package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/hugoctl/internal/config"
	"github.com/byterings/hugoctl/internal/hugo"
	"github.com/byterings/hugoctl/internal/platform"
	"github.com/byterings/hugoctl/internal/theme"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Check hugoctl configuration health and diagnose common issues.

Runs checks on:
- Config file validity
- Sites root existence and writability
- Themes root and theme descriptors
- Hugo binary and version
- Theme inventory consistency

Examples:
  hugoctl doctor           # Run all diagnostics
  hugoctl doctor --fix     # Create missing directories, fix permissions`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorFix, "fix", "f", false, "Create missing directories and fix permissions")
}

type checkResult struct {
	passed  bool
	message string
	fix     string // Suggested fix command
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println("Checking hugoctl configuration...")
	fmt.Println()

	errors := 0
	warnings := 0
	fixed := 0

	// 1. Config checks
	fmt.Println("Config")
	fmt.Println("──────")

	configResults, configFixed := checkConfig(doctorFix)
	for _, r := range configResults {
		printCheckResult(r)
		if !r.passed && r.fix == "" {
			errors++
		} else if !r.passed {
			warnings++
		}
	}
	fixed += configFixed

	// Load config for remaining checks
	exists, _ := config.ConfigExists()
	if !exists {
		fmt.Println()
		ui.Error("Cannot continue without a config file")
		return fmt.Errorf("hugoctl not initialized. Run 'hugoctl init' first")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println()
		ui.Error(fmt.Sprintf("Cannot continue: %v", err))
		return fmt.Errorf("config file is invalid")
	}

	// 2. Sites root checks
	fmt.Println()
	fmt.Println("Sites Root")
	fmt.Println("──────────")

	sitesResults, sitesFixed := checkSitesRoot(cfg, doctorFix)
	for _, r := range sitesResults {
		printCheckResult(r)
		if !r.passed && r.fix == "" {
			errors++
		} else if !r.passed {
			warnings++
		}
	}
	fixed += sitesFixed

	// 3. Themes root checks
	fmt.Println()
	fmt.Println("Themes Root")
	fmt.Println("───────────")

	themesResults, themesFixed := checkThemesRoot(cfg, doctorFix)
	for _, r := range themesResults {
		printCheckResult(r)
		if !r.passed && r.fix == "" {
			errors++
		} else if !r.passed {
			warnings++
		}
	}
	fixed += themesFixed

	// 4. Hugo binary checks
	fmt.Println()
	fmt.Println("Hugo Binary")
	fmt.Println("───────────")

	hugoResults := checkHugoBinary(cfg)
	for _, r := range hugoResults {
		printCheckResult(r)
		if !r.passed && r.fix == "" {
			errors++
		} else if !r.passed {
			warnings++
		}
	}

	// 5. Inventory checks
	fmt.Println()
	fmt.Println("Inventory")
	fmt.Println("─────────")

	invResults := checkInventory(cfg)
	for _, r := range invResults {
		printCheckResult(r)
		if !r.passed && r.fix == "" {
			errors++
		} else if !r.passed {
			warnings++
		}
	}

	// Summary
	fmt.Println()
	fmt.Println("─────────")

	if fixed > 0 {
		ui.Success(fmt.Sprintf("Auto-fixed %d issue(s)", fixed))
	}

	if errors == 0 && warnings == 0 {
		ui.Success("All checks passed!")
	} else if errors == 0 {
		ui.Warning(fmt.Sprintf("%d warning(s)", warnings))
	} else {
		ui.Error(fmt.Sprintf("%d error(s), %d warning(s)", errors, warnings))
		return fmt.Errorf("doctor found %d problem(s)", errors)
	}

	return nil
}

func printCheckResult(r checkResult) {
	if r.passed {
		fmt.Printf("  ✓ %s\n", r.message)
	} else if r.fix != "" {
		fmt.Printf("  ⚠ %s\n", r.message)
		fmt.Printf("    → %s\n", r.fix)
	} else {
		fmt.Printf("  ✗ %s\n", r.message)
	}
}

func checkConfig(autoFix bool) ([]checkResult, int) {
	var results []checkResult
	fixed := 0

	// Check if config exists
	exists, err := config.ConfigExists()
	if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Error checking config: %v", err),
		})
		return results, fixed
	}

	if !exists {
		results = append(results, checkResult{
			passed:  false,
			message: "Config file not found",
			fix:     "Run: hugoctl init",
		})
		return results, fixed
	}

	results = append(results, checkResult{
		passed:  true,
		message: "Config file exists",
	})

	// Try to load config
	if _, err := config.LoadConfig(); err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Config file invalid: %v", err),
			fix:     fmt.Sprintf("Edit %s", platform.GetConfigFilePath()),
		})
		return results, fixed
	}

	results = append(results, checkResult{
		passed:  true,
		message: "Config file valid",
	})

	// Config and inventory should not be world-readable
	paths := []string{}
	if p, err := config.GetConfigPath(); err == nil {
		paths = append(paths, p)
	}
	if p, err := config.GetInventoryPath(); err == nil {
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}

	for _, p := range paths {
		ok, err := platform.CheckFilePermissions(p)
		if err != nil || ok {
			continue
		}
		if autoFix {
			if err := platform.FixFilePermissions(p); err == nil {
				results = append(results, checkResult{
					passed:  true,
					message: fmt.Sprintf("Permissions fixed (600): %s", p),
				})
				fixed++
				continue
			}
		}
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("File is readable by other users: %s", p),
			fix:     fmt.Sprintf("Run: %s", platform.GetPermissionFixCommand(p)),
		})
	}

	return results, fixed
}

func checkSitesRoot(cfg *config.Config, autoFix bool) ([]checkResult, int) {
	var results []checkResult
	fixed := 0

	if cfg.SitesRoot == "" {
		results = append(results, checkResult{
			passed:  false,
			message: "sites_root is not configured",
			fix:     "Run: hugoctl init",
		})
		return results, fixed
	}

	// Check the directory exists
	info, err := os.Stat(cfg.SitesRoot)
	if os.IsNotExist(err) {
		if autoFix {
			if err := platform.MkdirContent(cfg.SitesRoot); err == nil {
				results = append(results, checkResult{
					passed:  true,
					message: fmt.Sprintf("Sites root created: %s", cfg.SitesRoot),
				})
				fixed++
			} else {
				results = append(results, checkResult{
					passed:  false,
					message: fmt.Sprintf("Cannot create sites root: %v", err),
				})
				return results, fixed
			}
		} else {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Sites root does not exist: %s", cfg.SitesRoot),
				fix:     fmt.Sprintf("Run: mkdir -p %s (or hugoctl doctor --fix)", cfg.SitesRoot),
			})
			return results, fixed
		}
	} else if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Cannot access sites root: %v", err),
		})
		return results, fixed
	} else if !info.IsDir() {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Sites root is not a directory: %s", cfg.SitesRoot),
		})
		return results, fixed
	} else {
		results = append(results, checkResult{
			passed:  true,
			message: fmt.Sprintf("Sites root exists: %s", cfg.SitesRoot),
		})
	}

	// Probe writability with a scratch file
	probe := filepath.Join(cfg.SitesRoot, ".hugoctl_write_test")
	if err := os.WriteFile(probe, []byte("probe"), 0644); err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Sites root is not writable: %v", err),
		})
	} else {
		os.Remove(probe)
		results = append(results, checkResult{
			passed:  true,
			message: "Sites root is writable",
		})
	}

	return results, fixed
}

func checkThemesRoot(cfg *config.Config, autoFix bool) ([]checkResult, int) {
	var results []checkResult
	fixed := 0

	if cfg.ThemesRoot == "" {
		results = append(results, checkResult{
			passed:  false,
			message: "themes_root is not configured",
			fix:     "Run: hugoctl init",
		})
		return results, fixed
	}

	if _, err := os.Stat(cfg.ThemesRoot); os.IsNotExist(err) {
		if autoFix {
			if err := platform.MkdirContent(cfg.ThemesRoot); err == nil {
				results = append(results, checkResult{
					passed:  true,
					message: fmt.Sprintf("Themes root created: %s", cfg.ThemesRoot),
				})
				fixed++
			} else {
				results = append(results, checkResult{
					passed:  false,
					message: fmt.Sprintf("Cannot create themes root: %v", err),
				})
				return results, fixed
			}
		} else {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Themes root does not exist: %s", cfg.ThemesRoot),
				fix:     fmt.Sprintf("Run: mkdir -p %s (or hugoctl doctor --fix)", cfg.ThemesRoot),
			})
			return results, fixed
		}
	} else if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Cannot access themes root: %v", err),
		})
		return results, fixed
	} else {
		results = append(results, checkResult{
			passed:  true,
			message: fmt.Sprintf("Themes root exists: %s", cfg.ThemesRoot),
		})
	}

	// Walk for descriptors and validate each one
	descriptors, err := theme.Discover(cfg.ThemesRoot)
	if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Cannot scan themes root: %v", err),
		})
		return results, fixed
	}

	if len(descriptors) == 0 {
		results = append(results, checkResult{
			passed:  false,
			message: "No themes found",
			fix:     fmt.Sprintf("Add theme directories under %s", cfg.ThemesRoot),
		})
		return results, fixed
	}

	valid := 0
	for _, descriptor := range descriptors {
		if _, err := theme.Load(descriptor); err != nil {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Invalid theme at %s: %v", filepath.Dir(descriptor), err),
				fix:     fmt.Sprintf("Run: hugoctl themes check %s", filepath.Dir(descriptor)),
			})
		} else {
			valid++
		}
	}

	results = append(results, checkResult{
		passed:  true,
		message: fmt.Sprintf("%d valid theme(s) found", valid),
	})

	return results, fixed
}

func checkHugoBinary(cfg *config.Config) []checkResult {
	var results []checkResult

	if cfg.HugoPath == "" {
		results = append(results, checkResult{
			passed:  false,
			message: "hugo_path is not configured",
			fix:     "Run: hugoctl init",
		})
		return results
	}

	runner, err := hugo.New(cfg.HugoPath, cfg.Timeout())
	if err != nil {
		fix := "Install hugo or correct hugo_path in the config"
		if platform.HasCommand("hugo") {
			fix = "hugo is in your PATH but hugo_path points elsewhere. Rerun: hugoctl init"
		}
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Hugo binary not found: %s", cfg.HugoPath),
			fix:     fix,
		})
		return results
	}

	results = append(results, checkResult{
		passed:  true,
		message: fmt.Sprintf("Hugo binary exists: %s", cfg.HugoPath),
	})

	version, err := runner.Version()
	if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Could not read hugo version: %v", err),
		})
		return results
	}

	results = append(results, checkResult{
		passed:  true,
		message: fmt.Sprintf("Hugo version: %s", version),
	})

	if warning, err := runner.CheckVersion(); err == nil && warning != "" {
		results = append(results, checkResult{
			passed:  false,
			message: warning,
			fix:     "Upgrade hugo to a recent release",
		})
	}

	return results
}

func checkInventory(cfg *config.Config) []checkResult {
	var results []checkResult

	store, err := openStore()
	if err != nil {
		results = append(results, checkResult{
			passed:  false,
			message: fmt.Sprintf("Cannot open inventory: %v", err),
		})
		return results
	}

	themes := store.Themes()
	sites := store.Sites()
	results = append(results, checkResult{
		passed:  true,
		message: fmt.Sprintf("Inventory holds %d theme(s), %d site(s)", len(themes), len(sites)),
	})

	// Flag active themes whose directory disappeared since the last sync
	descriptors, err := theme.Discover(cfg.ThemesRoot)
	if err != nil {
		return results
	}

	onDisk := make(map[string]bool)
	for _, descriptor := range descriptors {
		rel, err := filepath.Rel(cfg.ThemesRoot, filepath.Dir(descriptor))
		if err != nil {
			continue
		}
		onDisk[filepath.ToSlash(rel)] = true
	}

	stale := 0
	for _, t := range themes {
		if t.Active && !onDisk[t.Key] {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Theme '%s' is active but missing from disk", t.Key),
				fix:     "Run: hugoctl sync",
			})
			stale++
		}
	}

	if stale == 0 {
		results = append(results, checkResult{
			passed:  true,
			message: "Inventory matches themes on disk",
		})
	}

	// Flag sites that point at unknown or inactive themes
	for _, s := range sites {
		if s.Theme == "" {
			continue
		}
		t, ok := store.FindTheme(s.Theme)
		if !ok {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Site '%s' uses unknown theme '%s'", s.Slug, s.Theme),
				fix:     "Run: hugoctl sync",
			})
		} else if !t.Active {
			results = append(results, checkResult{
				passed:  false,
				message: fmt.Sprintf("Site '%s' uses inactive theme '%s'", s.Slug, s.Theme),
				fix:     fmt.Sprintf("Restore the theme directory under %s", cfg.ThemesRoot),
			})
		}
	}

	return results
}
