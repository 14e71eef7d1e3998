package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long the themes tree must stay quiet before a
// filesystem event triggers a sync. Copying a theme in produces a burst of
// events; one sync at the end covers them all.
const debounceDelay = 500 * time.Millisecond

// Watcher re-runs reconciliation whenever the themes root changes on disk.
type Watcher struct {
	root   string
	inv    Inventory
	onSync func(*SyncResult, error)

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher returns a watcher over rootDir. onSync is called after every
// reconciliation pass, and with a nil result when watching itself fails.
func NewWatcher(rootDir string, inv Inventory, onSync func(*SyncResult, error)) *Watcher {
	return &Watcher{root: rootDir, inv: inv, onSync: onSync}
}

// Run blocks, reconciling on filesystem events until ctx is canceled. An
// initial pass runs before the first event. The watch set is refreshed
// after every pass so directories created or removed mid-run stay covered.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	defer fw.Close()

	w.report(Sync(w.root, w.inv))
	if err := w.refreshWatches(fw); err != nil {
		return err
	}

	trigger := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleSync(trigger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.report(nil, fmt.Errorf("filesystem watcher error: %w", err))
		case <-trigger:
			w.report(Sync(w.root, w.inv))
			if err := w.refreshWatches(fw); err != nil {
				return err
			}
		}
	}
}

// scheduleSync arms the debounce timer, replacing any pending one.
func (w *Watcher) scheduleSync(trigger chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) report(result *SyncResult, err error) {
	if w.onSync != nil {
		w.onSync(result, err)
	}
}

// refreshWatches rebuilds the watch set from the current tree: the root,
// every intermediate directory, each theme directory, and its images
// directory. Theme internals beyond that are not watched.
func (w *Watcher) refreshWatches(fw *fsnotify.Watcher) error {
	for _, path := range fw.WatchList() {
		_ = fw.Remove(path)
	}
	if err := fw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}
	watchTree(fw, w.root, 0)
	return nil
}

func watchTree(fw *fsnotify.Watcher, dir string, depth int) {
	if depth > maxDiscoverDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Directory vanished mid-walk; the next event refreshes again.
		return
	}
	for _, entry := range entries {
		sub := filepath.Join(dir, entry.Name())
		info, err := os.Stat(sub)
		if err != nil || !info.IsDir() {
			continue
		}
		_ = fw.Add(sub)
		if _, err := os.Stat(filepath.Join(sub, DescriptorName)); err == nil {
			imagesDir := filepath.Join(sub, imagesDirName)
			if info, err := os.Stat(imagesDir); err == nil && info.IsDir() {
				_ = fw.Add(imagesDir)
			}
			continue
		}
		watchTree(fw, sub, depth+1)
	}
}
