// Package inventory persists the theme and site records hugoctl manages in
// a single TOML file. Mutations go through a transaction so a whole
// reconcile pass lands atomically or not at all.
package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/byterings/hugoctl/internal/theme"
)

// FileName is the inventory file kept next to the tool configuration.
const FileName = "inventory.toml"

var errFinished = errors.New("transaction already finished")

// Store holds the inventory records in memory and persists them at path.
// It expects a single writer; concurrent transactions are not coordinated
// beyond last-commit-wins.
type Store struct {
	path string

	mu   sync.Mutex
	data File
}

// Open loads the inventory at path, or starts an empty one when the file
// does not exist yet. Nothing is written until the first commit.
func Open(path string) (*Store, error) {
	store := &Store{path: path, data: File{Version: CurrentVersion}}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to stat inventory file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &store.data); err != nil {
		return nil, fmt.Errorf("failed to decode inventory file: %w", err)
	}
	if store.data.Version == "" {
		store.data.Version = CurrentVersion
	}
	return store, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Themes returns a copy of all theme records, sorted by key.
func (s *Store) Themes() []Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	themes := append([]Theme(nil), s.data.Themes...)
	sort.Slice(themes, func(i, j int) bool { return themes[i].Key < themes[j].Key })
	return themes
}

// ActiveThemes returns the active theme records, sorted by key.
func (s *Store) ActiveThemes() []Theme {
	var active []Theme
	for _, t := range s.Themes() {
		if t.Active {
			active = append(active, t)
		}
	}
	return active
}

// Sites returns a copy of all site records, sorted by slug.
func (s *Store) Sites() []Site {
	s.mu.Lock()
	defer s.mu.Unlock()
	sites := append([]Site(nil), s.data.Sites...)
	sort.Slice(sites, func(i, j int) bool { return sites[i].Slug < sites[j].Slug })
	return sites
}

// Keys returns the identity key of every theme record, active or not.
func (s *Store) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data.Themes))
	for i := range s.data.Themes {
		keys = append(keys, s.data.Themes[i].Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// FindTheme returns the theme record with the given key.
func (s *Store) FindTheme(key string) (Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Themes {
		if s.data.Themes[i].Key == key {
			return s.data.Themes[i], true
		}
	}
	return Theme{}, false
}

// FindSite returns the site record with the given slug.
func (s *Store) FindSite(slug string) (Site, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Sites {
		if s.data.Sites[i].Slug == slug {
			return s.data.Sites[i], true
		}
	}
	return Site{}, false
}

// Begin opens a transaction over a snapshot of the current records.
func (s *Store) Begin() (*Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Tx{store: s, data: s.data.clone()}, nil
}

// ThemeInventory adapts the store to the reconciler's collaborator
// interface.
func (s *Store) ThemeInventory() theme.Inventory {
	return themeInventory{store: s}
}

type themeInventory struct {
	store *Store
}

func (t themeInventory) Keys() ([]string, error) {
	return t.store.Keys()
}

func (t themeInventory) Begin() (theme.InventoryTx, error) {
	tx, err := t.store.Begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

var (
	_ theme.Inventory   = themeInventory{}
	_ theme.InventoryTx = (*Tx)(nil)
)

// Tx buffers changes against a snapshot and writes the whole file once on
// Commit. A transaction that changed nothing writes nothing.
type Tx struct {
	store *Store
	data  File
	dirty bool
	done  bool
}

// CreateEntry adds a theme record from a reconciled entry.
func (tx *Tx) CreateEntry(e theme.Entry) error {
	if tx.done {
		return errFinished
	}
	for i := range tx.data.Themes {
		if tx.data.Themes[i].Key == e.Key {
			return fmt.Errorf("theme with key '%s' already exists", e.Key)
		}
	}
	now := time.Now().UTC()
	tx.data.Themes = append(tx.data.Themes, Theme{
		Key:         e.Key,
		Name:        e.Name,
		Description: e.Description,
		Active:      e.Active,
		Screenshot:  e.Screenshot,
		Thumbnail:   e.Thumbnail,
		AddedAt:     now,
		UpdatedAt:   now,
	})
	tx.dirty = true
	return nil
}

// SetActive flips a theme's activation flag and reports whether the stored
// value changed. The update timestamp moves only on a real change.
func (tx *Tx) SetActive(key string, active bool) (bool, error) {
	if tx.done {
		return false, errFinished
	}
	for i := range tx.data.Themes {
		if tx.data.Themes[i].Key != key {
			continue
		}
		if tx.data.Themes[i].Active == active {
			return false, nil
		}
		tx.data.Themes[i].Active = active
		tx.data.Themes[i].UpdatedAt = time.Now().UTC()
		tx.dirty = true
		return true, nil
	}
	return false, fmt.Errorf("no theme with key '%s' in inventory", key)
}

// CreateSite adds a site record, filling in pagination and timestamp
// defaults.
func (tx *Tx) CreateSite(site Site) error {
	if tx.done {
		return errFinished
	}
	for i := range tx.data.Sites {
		if tx.data.Sites[i].Slug == site.Slug {
			return fmt.Errorf("site with slug '%s' already exists", site.Slug)
		}
	}
	if site.PagerSize <= 0 {
		site.PagerSize = DefaultPagerSize
	}
	now := time.Now().UTC()
	if site.CreatedAt.IsZero() {
		site.CreatedAt = now
	}
	site.ModifiedAt = now
	tx.data.Sites = append(tx.data.Sites, site)
	tx.dirty = true
	return nil
}

// SetSiteArchived flips a site's archived flag and reports whether the
// stored value changed.
func (tx *Tx) SetSiteArchived(slug string, archived bool) (bool, error) {
	if tx.done {
		return false, errFinished
	}
	for i := range tx.data.Sites {
		if tx.data.Sites[i].Slug != slug {
			continue
		}
		if tx.data.Sites[i].Archived == archived {
			return false, nil
		}
		tx.data.Sites[i].Archived = archived
		tx.dirty = true
		return true, nil
	}
	return false, fmt.Errorf("no site with slug '%s' in inventory", slug)
}

// MarkSitePublished stamps the site's publish time.
func (tx *Tx) MarkSitePublished(slug string) error {
	if tx.done {
		return errFinished
	}
	for i := range tx.data.Sites {
		if tx.data.Sites[i].Slug != slug {
			continue
		}
		now := time.Now().UTC()
		tx.data.Sites[i].PublishedAt = &now
		tx.dirty = true
		return nil
	}
	return fmt.Errorf("no site with slug '%s' in inventory", slug)
}

// TouchSite bumps a site's modification time.
func (tx *Tx) TouchSite(slug string) error {
	if tx.done {
		return errFinished
	}
	for i := range tx.data.Sites {
		if tx.data.Sites[i].Slug != slug {
			continue
		}
		tx.data.Sites[i].ModifiedAt = time.Now().UTC()
		tx.dirty = true
		return nil
	}
	return fmt.Errorf("no site with slug '%s' in inventory", slug)
}

// Commit writes the buffered records to disk atomically and installs them
// in the store.
func (tx *Tx) Commit() error {
	if tx.done {
		return errFinished
	}
	tx.done = true
	if !tx.dirty {
		return nil
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	if err := writeFile(tx.store.path, &tx.data); err != nil {
		return err
	}
	tx.store.data = tx.data
	return nil
}

// Rollback discards the transaction.
func (tx *Tx) Rollback() {
	tx.done = true
}

// writeFile replaces path with the encoded inventory via a temp file and
// rename, so a crash mid-write never leaves a truncated inventory behind.
func writeFile(path string, data *File) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp inventory file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set inventory permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp inventory file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace inventory file: %w", err)
	}
	return nil
}
