package ui

import (
	"fmt"

	"github.com/byterings/hugoctl/internal/theme"
)

// PrintSyncResult prints the outcome of a reconcile pass in a formatted way
func PrintSyncResult(result *theme.SyncResult) {
	for _, key := range result.Created {
		Success(fmt.Sprintf("Registered new theme '%s'", key))
	}
	for _, key := range result.Deactivated {
		Warning(fmt.Sprintf("Theme '%s' is gone from disk, marked inactive", key))
	}
	for _, failure := range result.Failed {
		Error(fmt.Sprintf("Skipped %s: %v", failure.Descriptor, failure.Err))
	}

	if result.Mutated() {
		Success(fmt.Sprintf("Sync complete: %d new, %d deactivated, %d unchanged",
			len(result.Created), len(result.Deactivated), result.Unchanged))
	} else if len(result.Failed) == 0 {
		Info(fmt.Sprintf("Inventory up to date (%d themes)", result.Unchanged))
	}
}

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Printf("✓ %s\n", message)
}

// Error prints an error message
func Error(message string) {
	fmt.Printf("✗ %s\n", message)
}

// Info prints an info message
func Info(message string) {
	fmt.Printf("ℹ %s\n", message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Printf("⚠ %s\n", message)
}
