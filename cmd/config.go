package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/hugoctl/internal/config"
	"github.com/byterings/hugoctl/internal/hugo"
	"github.com/byterings/hugoctl/internal/siteconfig"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and normalize site configuration documents",
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a site configuration document",
	Long: `Parse a Hugo site configuration document and report every invalid field.
Field violations are collected in one pass, so a single run shows the
full list.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigCheck,
}

var configFmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Normalize a site configuration document",
	Long: `Parse a site configuration document and re-emit it in normalized form:
alias spellings rewritten to their canonical names, keys sorted, unknown
keys preserved. Prints to stdout unless -w is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigFmt,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configFmtCmd)
	configFmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back instead of printing it")
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	_, err := siteconfig.ParseFile(path)
	if err == nil {
		ui.Success(fmt.Sprintf("%s is valid", path))
		return nil
	}

	var vErr *siteconfig.ValidationError
	if errors.As(err, &vErr) {
		fmt.Printf("%s has %d invalid field(s):\n", path, len(vErr.Fields))
		for _, f := range vErr.Fields {
			ui.Error(f.Error())
		}
		return fmt.Errorf("validation failed")
	}

	return err
}

func runConfigFmt(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := siteconfig.ParseFile(path)
	if err != nil {
		return err
	}

	text, err := cfg.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	if !fmtWrite {
		fmt.Print(string(text))
		return nil
	}

	// Keep the file's own permissions when rewriting in place
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, text, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	ui.Success(fmt.Sprintf("Rewrote %s", path))
	touchSiteRecord(path)
	return nil
}

// touchSiteRecord bumps the inventory's modification time when the
// rewritten file is a managed site's configuration document. Best effort:
// config fmt also works on arbitrary files and before init.
func touchSiteRecord(path string) {
	exists, err := config.ConfigExists()
	if err != nil || !exists {
		return
	}
	cfg, err := config.LoadConfig()
	if err != nil || cfg.SitesRoot == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil || filepath.Base(abs) != hugo.ConfigFileName {
		return
	}
	root, err := filepath.Abs(cfg.SitesRoot)
	if err != nil || filepath.Dir(filepath.Dir(abs)) != root {
		return
	}
	slug := filepath.Base(filepath.Dir(abs))

	store, err := openStore()
	if err != nil {
		return
	}
	if _, ok := store.FindSite(slug); !ok {
		return
	}
	tx, err := store.Begin()
	if err != nil {
		return
	}
	if err := tx.TouchSite(slug); err != nil {
		tx.Rollback()
		return
	}
	if err := tx.Commit(); err == nil {
		ui.Info(fmt.Sprintf("Site '%s' marked as modified", slug))
	}
}
