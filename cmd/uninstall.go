package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/byterings/hugoctl/internal/config"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var uninstallForce bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove hugoctl configuration and inventory",
	Long: `Remove the hugoctl configuration directory, including the theme and site
inventory. Site trees and theme directories are left untouched.`,
	Example: `  # Remove ~/.hugoctl after confirming
  hugoctl uninstall

  # After running this command, manually delete the binary:
  # Linux/macOS: sudo rm /usr/local/bin/hugoctl
  # Windows: Remove from Add/Remove Programs or delete the install folder`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVar(&uninstallForce, "force", false, "Skip confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		ui.Info("hugoctl is not initialized, nothing to remove")
		return nil
	}

	if !uninstallForce {
		fmt.Printf("This removes %s, including the theme and site inventory.\n", configDir)
		fmt.Println("Site trees and theme directories are left untouched.")
		fmt.Println()

		confirmed, err := ui.PromptConfirmation("Continue?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Operation cancelled.")
			return nil
		}
		fmt.Println()
	}

	if err := os.RemoveAll(configDir); err != nil {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	ui.Success(fmt.Sprintf("Removed %s", configDir))
	fmt.Println()
	fmt.Println("Final step - manually remove the hugoctl binary:")
	if runtime.GOOS == "windows" {
		fmt.Println("  Remove-Item \"$env:LOCALAPPDATA\\hugoctl\" -Recurse -Force")
	} else {
		fmt.Println("  sudo rm /usr/local/bin/hugoctl")
	}
	fmt.Println()

	return nil
}
