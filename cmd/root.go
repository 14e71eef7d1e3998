package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for hugoctl.
var rootCmd = &cobra.Command{
	Use:   "hugoctl",
	Short: "Manage Hugo sites and themes from one place",
	Long: `hugoctl keeps a collection of Hugo sites and themes organized.

It validates site configuration files, reconciles a persistent theme
inventory with the theme directories on disk, and scaffolds new sites
through the hugo binary.`,
	SilenceUsage: true,
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "hugoctl version %s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
