package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/byterings/hugoctl/internal/theme"
	"github.com/byterings/hugoctl/internal/ui"
	"github.com/spf13/cobra"
)

var watchThemes bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the theme inventory with the themes on disk",
	Long: `Scan the themes root for theme directories and bring the inventory
in step with what is found.

New themes are registered as active, themes whose directory disappeared
are marked inactive, and themes with an invalid descriptor are reported
and skipped. Inventory records are never deleted.

With --watch, sync keeps running and reconciles again whenever the
themes root changes.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVarP(&watchThemes, "watch", "w", false, "Keep watching the themes root for changes")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	if cfg.ThemesRoot == "" {
		return fmt.Errorf("themes_root is not configured. Run 'hugoctl init' first")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if !watchThemes {
		result, err := theme.Sync(cfg.ThemesRoot, store.ThemeInventory())
		if err != nil {
			return err
		}
		ui.PrintSyncResult(result)
		return nil
	}

	// Watch mode: reconcile now and after every change until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", cfg.ThemesRoot))

	watcher := theme.NewWatcher(cfg.ThemesRoot, store.ThemeInventory(), func(result *theme.SyncResult, err error) {
		if err != nil {
			ui.Error(err.Error())
			return
		}
		ui.PrintSyncResult(result)
	})

	return watcher.Run(ctx)
}
