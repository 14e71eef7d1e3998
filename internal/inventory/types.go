package inventory

import "time"

// CurrentVersion is written to new inventory files.
const CurrentVersion = "1.0"

// DefaultPagerSize is applied when a site does not choose a page size.
const DefaultPagerSize = 10

// Theme is one reconciled theme record. Records are never deleted: a theme
// that disappears from disk is kept inactive so sites already using it can
// still resolve it.
type Theme struct {
	Key         string    `toml:"key"`
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Active      bool      `toml:"active"`
	Screenshot  string    `toml:"screenshot"`
	Thumbnail   string    `toml:"thumbnail"`
	AddedAt     time.Time `toml:"added_at"`
	UpdatedAt   time.Time `toml:"updated_at"`
}

// Site is one managed Hugo site record.
type Site struct {
	Slug         string     `toml:"slug"`
	Name         string     `toml:"name"`
	Title        string     `toml:"title"`
	Description  string     `toml:"description"`
	Copyright    string     `toml:"copyright"`
	BaseURL      string     `toml:"base_url"`
	Theme        string     `toml:"theme"`
	PagerSize    int        `toml:"pager_size"`
	EnableEmoji  bool       `toml:"enable_emoji"`
	EnableRobots bool       `toml:"enable_robots"`
	Archived     bool       `toml:"archived"`
	CreatedAt    time.Time  `toml:"created_at"`
	ModifiedAt   time.Time  `toml:"modified_at"`
	PublishedAt  *time.Time `toml:"published_at"`
}

// HasUnpublishedChanges reports whether the site changed since it was last
// published. A site never published counts as changed.
func (s *Site) HasUnpublishedChanges() bool {
	if s.PublishedAt == nil {
		return true
	}
	return s.ModifiedAt.After(*s.PublishedAt)
}

// File is the on-disk layout of the inventory.
type File struct {
	Version string  `toml:"version"`
	Themes  []Theme `toml:"themes"`
	Sites   []Site  `toml:"sites"`
}

func (f *File) clone() File {
	return File{
		Version: f.Version,
		Themes:  append([]Theme(nil), f.Themes...),
		Sites:   append([]Site(nil), f.Sites...),
	}
}
