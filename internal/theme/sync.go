package theme

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Entry is the projection of a loaded theme that gets copied into the
// inventory when a new theme is first seen.
type Entry struct {
	Key         string
	Name        string
	Description string
	Active      bool
	Screenshot  string
	Thumbnail   string
}

// Inventory is the persistent store Sync reconciles against.
type Inventory interface {
	// Keys returns the identity key of every known theme, active or not.
	Keys() ([]string, error)

	// Begin opens a transaction covering one reconciliation write phase.
	Begin() (InventoryTx, error)
}

// InventoryTx batches inventory writes. Implementations must apply all
// mutations of one transaction atomically, or none of them.
type InventoryTx interface {
	CreateEntry(e Entry) error

	// SetActive flips a theme's activation flag and reports whether the
	// stored value actually changed.
	SetActive(key string, active bool) (bool, error)

	Commit() error
	Rollback()
}

// Failure records one theme that could not be loaded during a sync pass.
type Failure struct {
	Descriptor string
	Err        error
}

// SyncResult summarizes one reconciliation pass.
type SyncResult struct {
	Created     []string
	Deactivated []string
	Unchanged   int
	Failed      []Failure
}

// Mutated reports whether the pass wrote anything to the inventory.
func (r *SyncResult) Mutated() bool {
	return len(r.Created) > 0 || len(r.Deactivated) > 0
}

// Sync reconciles the inventory with the themes on disk under rootDir.
// Newly discovered themes are created active; themes whose directory has
// disappeared from disk are deactivated, never deleted. A theme that fails
// to load is reported in the result and is neither created nor deactivated:
// its descriptor is still on disk, so the theme has not disappeared. All
// writes happen in a single transaction; when there is nothing to write,
// no transaction is opened. Running Sync twice over an unchanged tree
// mutates nothing on the second pass.
func Sync(rootDir string, inv Inventory) (*SyncResult, error) {
	descriptors, err := Discover(rootDir)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	onDisk := make(map[string]bool, len(descriptors))
	loaded := make(map[string]*Metadata, len(descriptors))
	for _, descriptor := range descriptors {
		key, err := identityKey(rootDir, descriptor)
		if err != nil {
			return nil, err
		}
		onDisk[key] = true
		meta, err := Load(descriptor)
		if err != nil {
			result.Failed = append(result.Failed, Failure{Descriptor: descriptor, Err: err})
			continue
		}
		loaded[key] = meta
	}

	known, err := inv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list theme inventory: %w", err)
	}
	knownSet := make(map[string]bool, len(known))
	for _, key := range known {
		knownSet[key] = true
	}

	var creates []Entry
	for key, meta := range loaded {
		if knownSet[key] {
			result.Unchanged++
			continue
		}
		creates = append(creates, Entry{
			Key:         key,
			Name:        meta.Name,
			Description: meta.Description,
			Active:      true,
			Screenshot:  meta.Screenshot,
			Thumbnail:   meta.Thumbnail,
		})
	}
	sort.Slice(creates, func(i, j int) bool { return creates[i].Key < creates[j].Key })

	var missing []string
	for _, key := range known {
		if !onDisk[key] {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)

	if len(creates) == 0 && len(missing) == 0 {
		return result, nil
	}

	tx, err := inv.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	for _, entry := range creates {
		if err := tx.CreateEntry(entry); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create inventory entry %s: %w", entry.Key, err)
		}
		result.Created = append(result.Created, entry.Key)
	}
	for _, key := range missing {
		changed, err := tx.SetActive(key, false)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to deactivate theme %s: %w", key, err)
		}
		if changed {
			result.Deactivated = append(result.Deactivated, key)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit inventory changes: %w", err)
	}
	return result, nil
}

// identityKey is a theme's directory path relative to the themes root, in
// slash form so keys are stable across platforms.
func identityKey(rootDir, descriptor string) (string, error) {
	rel, err := filepath.Rel(rootDir, filepath.Dir(descriptor))
	if err != nil {
		return "", fmt.Errorf("failed to compute theme key for %s: %w", descriptor, err)
	}
	return filepath.ToSlash(rel), nil
}
