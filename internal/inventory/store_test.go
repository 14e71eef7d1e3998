package inventory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byterings/hugoctl/internal/theme"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	return store
}

func paperEntry(key string) theme.Entry {
	return theme.Entry{
		Key:         key,
		Name:        "Paper",
		Description: "A clean theme",
		Active:      true,
		Screenshot:  "/themes/" + key + "/images/screenshot.png",
		Thumbnail:   "/themes/" + key + "/images/tn.png",
	}
}

func TestOpenMissingFile(t *testing.T) {
	store := tempStore(t)
	assert.Empty(t, store.Themes())
	assert.Empty(t, store.Sites())

	// Nothing is written until the first commit.
	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestCommitPersistsRecords(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	require.NoError(t, tx.CreateEntry(paperEntry("sub/ink")))
	require.NoError(t, tx.CreateSite(Site{
		Slug:    "blog",
		Name:    "My Blog",
		Title:   "My Blog",
		BaseURL: "https://blog.example.com/",
		Theme:   "paper",
	}))
	require.NoError(t, tx.Commit())

	reopened, err := Open(store.Path())
	require.NoError(t, err)

	themes := reopened.Themes()
	require.Len(t, themes, 2)
	assert.Equal(t, "paper", themes[0].Key)
	assert.Equal(t, "sub/ink", themes[1].Key)
	assert.True(t, themes[0].Active)
	assert.WithinDuration(t, time.Now(), themes[0].AddedAt, time.Minute)

	sites := reopened.Sites()
	require.Len(t, sites, 1)
	assert.Equal(t, "blog", sites[0].Slug)
	assert.Equal(t, DefaultPagerSize, sites[0].PagerSize)
	assert.Nil(t, sites[0].PublishedAt)
}

func TestCommitWithoutChangesWritesNothing(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestRollbackDiscardsChanges(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	tx.Rollback()

	assert.Empty(t, store.Themes())
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))

	// A finished transaction refuses further work.
	assert.ErrorIs(t, tx.Commit(), errFinished)
	assert.ErrorIs(t, tx.CreateEntry(paperEntry("other")), errFinished)
}

func TestSetActiveReportsChange(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	require.NoError(t, tx.Commit())

	tx, err = store.Begin()
	require.NoError(t, err)
	changed, err := tx.SetActive("paper", false)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, tx.Commit())

	record, ok := store.FindTheme("paper")
	require.True(t, ok)
	assert.False(t, record.Active)

	// Same value again is a no-op.
	tx, err = store.Begin()
	require.NoError(t, err)
	changed, err = tx.SetActive("paper", false)
	require.NoError(t, err)
	assert.False(t, changed)
	require.NoError(t, tx.Commit())

	unchanged, ok := store.FindTheme("paper")
	require.True(t, ok)
	assert.True(t, record.UpdatedAt.Equal(unchanged.UpdatedAt))
}

func TestSetActiveUnknownKey(t *testing.T) {
	store := tempStore(t)
	tx, err := store.Begin()
	require.NoError(t, err)

	_, err = tx.SetActive("ghost", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestCreateDuplicates(t *testing.T) {
	store := tempStore(t)
	tx, err := store.Begin()
	require.NoError(t, err)

	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	err = tx.CreateEntry(paperEntry("paper"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, tx.CreateSite(Site{Slug: "blog"}))
	err = tx.CreateSite(Site{Slug: "blog"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestMarkSitePublished(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateSite(Site{Slug: "blog"}))
	require.NoError(t, tx.Commit())

	site, ok := store.FindSite("blog")
	require.True(t, ok)
	assert.True(t, site.HasUnpublishedChanges())

	tx, err = store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.MarkSitePublished("blog"))
	require.NoError(t, tx.Commit())

	site, ok = store.FindSite("blog")
	require.True(t, ok)
	require.NotNil(t, site.PublishedAt)
	assert.False(t, site.HasUnpublishedChanges())

	tx, err = store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.TouchSite("blog"))
	require.NoError(t, tx.Commit())

	site, _ = store.FindSite("blog")
	assert.True(t, site.HasUnpublishedChanges())
}

func TestSetSiteArchived(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateSite(Site{Slug: "blog"}))
	require.NoError(t, tx.Commit())

	tx, err = store.Begin()
	require.NoError(t, err)
	changed, err := tx.SetSiteArchived("blog", true)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, tx.Commit())

	site, ok := store.FindSite("blog")
	require.True(t, ok)
	assert.True(t, site.Archived)
}

func TestActiveThemes(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	require.NoError(t, tx.CreateEntry(paperEntry("retired")))
	_, err = tx.SetActive("retired", false)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	active := store.ActiveThemes()
	require.Len(t, active, 1)
	assert.Equal(t, "paper", active[0].Key)
}

func TestReconcilerAgainstStore(t *testing.T) {
	store := tempStore(t)
	inv := store.ThemeInventory()

	keys, err := inv.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	tx, err := inv.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	require.NoError(t, tx.Commit())

	keys, err = inv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"paper"}, keys)

	// The reconciled entry is visible through the store's own API too.
	record, ok := store.FindTheme("paper")
	require.True(t, ok)
	assert.Equal(t, "Paper", record.Name)
}

func TestCommitReplacesFileAtomically(t *testing.T) {
	store := tempStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("paper")))
	require.NoError(t, tx.Commit())

	first, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	tx, err = store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.CreateEntry(paperEntry("ink")))
	require.NoError(t, tx.Commit())

	second, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}
