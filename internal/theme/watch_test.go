package theme

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRunsInitialSync(t *testing.T) {
	root := t.TempDir()
	writeTheme(t, root, "theme1", validDescriptor)
	inv := newMemInventory()

	results := make(chan *SyncResult, 1)
	w := NewWatcher(root, inv, func(result *SyncResult, err error) {
		assert.NoError(t, err)
		select {
		case results <- result:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case result := <-results:
		require.NotNil(t, result)
		assert.Equal(t, []string{"theme1"}, result.Created)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial sync within 5s")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcherPicksUpNewTheme(t *testing.T) {
	root := t.TempDir()
	inv := newMemInventory()

	var mu sync.Mutex
	passes := 0
	w := NewWatcher(root, inv, func(result *SyncResult, err error) {
		mu.Lock()
		passes++
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return passes >= 1
	}, 5*time.Second, 20*time.Millisecond, "initial sync never ran")

	writeTheme(t, root, "fresh", validDescriptor)

	require.Eventually(t, func() bool {
		_, ok := inv.get("fresh")
		return ok
	}, 10*time.Second, 100*time.Millisecond, "new theme never reconciled")

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
