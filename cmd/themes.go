package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/byterings/hugoctl/internal/theme"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var themesAll bool

var themesCmd = &cobra.Command{
	Use:     "themes",
	Aliases: []string{"theme"},
	Short:   "Inspect themes and the theme inventory",
}

var themesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List themes in the inventory",
	Long:    `Display inventoried themes. Shows active themes by default; pass --all to include themes whose directory has disappeared from the themes root.`,
	RunE:    runThemesList,
}

var themesCheckCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a single theme directory",
	Long: `Load and validate the descriptor of one theme directory without touching
the inventory. Useful while authoring a theme.`,
	Args: cobra.ExactArgs(1),
	RunE: runThemesCheck,
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesCheckCmd)
	themesListCmd.Flags().BoolVarP(&themesAll, "all", "a", false, "Include inactive themes")
}

func runThemesList(cmd *cobra.Command, args []string) error {
	if _, err := requireConfig(); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if themesAll {
		ui.PrintThemesTable(store.Themes())
		return nil
	}

	ui.PrintThemesTable(store.ActiveThemes())
	return nil
}

func runThemesCheck(cmd *cobra.Command, args []string) error {
	descriptor := filepath.Join(args[0], theme.DescriptorName)

	meta, err := theme.Load(descriptor)
	if err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Theme '%s' is valid", meta.Name))
	fmt.Printf("  License:    %s\n", meta.License)
	fmt.Printf("  Homepage:   %s\n", meta.Homepage)
	if meta.Author != nil {
		fmt.Printf("  Author:     %s\n", meta.Author.Name)
	}
	if len(meta.Authors) > 0 {
		names := make([]string, 0, len(meta.Authors))
		for _, a := range meta.Authors {
			names = append(names, a.Name)
		}
		fmt.Printf("  Authors:    %s\n", strings.Join(names, ", "))
	}
	if len(meta.Tags) > 0 {
		fmt.Printf("  Tags:       %s\n", strings.Join(meta.Tags, ", "))
	}
	fmt.Printf("  Screenshot: %s\n", meta.Screenshot)
	fmt.Printf("  Thumbnail:  %s\n", meta.Thumbnail)

	return nil
}
