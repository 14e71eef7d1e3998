// Package theme loads and validates Hugo theme descriptors and keeps a
// persisted theme inventory in step with the theme directories on disk.
package theme

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DescriptorName is the file that marks a directory as a theme.
const DescriptorName = "theme.toml"

// imagesDirName is the directory next to the descriptor that holds the
// preview images.
const imagesDirName = "images"

// Metadata is a fully validated theme descriptor. Load either returns a
// complete value or an error; a partially valid Metadata never escapes.
type Metadata struct {
	Name        string   `toml:"name"`
	License     string   `toml:"license"`
	LicenseLink string   `toml:"licenselink"`
	Description string   `toml:"description"`
	Homepage    string   `toml:"homepage"`
	DemoSite    string   `toml:"demosite"`
	Tags        []string `toml:"tags"`
	Features    []string `toml:"features"`

	// Author and Authors are mutually exclusive spellings of authorship.
	Author  *Author  `toml:"author"`
	Authors []Author `toml:"authors"`

	Original *Original `toml:"original"`

	// Derived during load, never declared in the descriptor.
	Dir        string `toml:"-"`
	Screenshot string `toml:"-"`
	Thumbnail  string `toml:"-"`
}

// Author identifies a theme author.
type Author struct {
	Name     string `toml:"name"`
	Homepage string `toml:"homepage"`
}

// Original credits the upstream theme this one was ported from.
type Original struct {
	Author   string `toml:"author"`
	Homepage string `toml:"homepage"`
	Repo     string `toml:"repo"`
}

// Load reads, decodes, and validates the theme descriptor at
// descriptorPath. Validation is fail-fast: the first violation aborts the
// load. The screenshot and thumbnail are not declared in the descriptor;
// they resolve by convention from the images directory next to it,
// preferring PNG over JPG.
func Load(descriptorPath string) (*Metadata, error) {
	if info, err := os.Stat(descriptorPath); err != nil || info.IsDir() {
		return nil, notFoundf("theme descriptor not found at %s", descriptorPath)
	}

	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme descriptor: %w", err)
	}

	var meta Metadata
	if err := toml.Unmarshal(data, &meta); err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return nil, &DecodeError{Path: descriptorPath, Err: err}
		}
		// Syntactically valid TOML with wrongly typed fields.
		return nil, invalidf("bad field in theme descriptor: %v", err)
	}

	dir, err := filepath.Abs(filepath.Dir(descriptorPath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme directory: %w", err)
	}
	meta.Dir = dir

	if err := meta.validate(); err != nil {
		return nil, err
	}

	imagesDir := filepath.Join(dir, imagesDirName)
	if info, err := os.Stat(imagesDir); err != nil || !info.IsDir() {
		return nil, notFoundf("images directory not found: %s", imagesDir)
	}

	screenshot, err := resolveImage(imagesDir, "screenshot", "screenshot")
	if err != nil {
		return nil, err
	}
	thumbnail, err := resolveImage(imagesDir, "tn", "thumbnail")
	if err != nil {
		return nil, err
	}

	if err := checkImage(screenshot, "screenshot", screenshotMinWidth, screenshotMinHeight); err != nil {
		return nil, err
	}
	if err := checkImage(thumbnail, "thumbnail", thumbnailMinWidth, thumbnailMinHeight); err != nil {
		return nil, err
	}

	if meta.Author != nil && len(meta.Authors) > 0 {
		return nil, invalidf("provide either author (single) or authors (list), not both")
	}

	meta.Screenshot = screenshot
	meta.Thumbnail = thumbnail
	return &meta, nil
}

// validate checks the declared descriptor fields. Image checks happen
// separately because they touch the filesystem.
func (m *Metadata) validate() error {
	if m.Name == "" {
		return invalidf("name is required")
	}
	if m.License == "" {
		return invalidf("license is required")
	}
	if m.Description == "" {
		return invalidf("description is required")
	}
	if m.Homepage == "" {
		return invalidf("homepage is required")
	}
	if err := checkFieldURL("homepage", m.Homepage); err != nil {
		return err
	}
	if err := checkOptionalFieldURL("licenselink", m.LicenseLink); err != nil {
		return err
	}
	if err := checkOptionalFieldURL("demosite", m.DemoSite); err != nil {
		return err
	}
	if m.Author != nil {
		if err := m.Author.validate("author"); err != nil {
			return err
		}
	}
	for i := range m.Authors {
		if err := m.Authors[i].validate(fmt.Sprintf("authors[%d]", i)); err != nil {
			return err
		}
	}
	if m.Original != nil {
		if m.Original.Author == "" {
			return invalidf("original.author is required when original is present")
		}
		if err := checkOptionalFieldURL("original.homepage", m.Original.Homepage); err != nil {
			return err
		}
		if err := checkOptionalFieldURL("original.repo", m.Original.Repo); err != nil {
			return err
		}
	}
	return nil
}

func (a *Author) validate(field string) error {
	if a.Name == "" {
		return invalidf("%s.name is required", field)
	}
	return checkOptionalFieldURL(field+".homepage", a.Homepage)
}

// resolveImage finds base.png or base.jpg under dir, preferring PNG.
func resolveImage(dir, base, label string) (string, error) {
	for _, ext := range []string{".png", ".jpg"} {
		path := filepath.Join(dir, base+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", notFoundf("%s image not found in %s: expected %s.png or %s.jpg", label, dir, base, base)
}

func checkFieldURL(field, value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalidf("%s must be an absolute http(s) URL, got %q", field, value)
	}
	return nil
}

func checkOptionalFieldURL(field, value string) error {
	if value == "" {
		return nil
	}
	return checkFieldURL(field, value)
}
