// Package siteconfig models a Hugo site configuration document. A small,
// commonly used subset of keys is typed; everything else passes through an
// extension bag so a load-then-save cycle never loses data.
package siteconfig

import (
	"errors"
	"fmt"
	"net/url"
)

// DefaultLanguageCode is used when a document does not set languageCode.
// It is an in-memory default only and is never written during serialization.
const DefaultLanguageCode = "en-us"

// Config is the typed representation of a site configuration document.
// All fields except BaseURL are optional; a nil field means "inherit the
// generator default" and is omitted entirely on serialization.
type Config struct {
	BaseURL URL

	Build                          *Build
	BuildDrafts                    *bool
	BuildExpired                   *bool
	BuildFuture                    *bool
	Caches                         map[string]any
	CanonifyURLs                   *bool
	CapitalizeListTitles           *bool
	Cascade                        map[string]any
	ContentTypes                   map[string]any
	Copyright                      *string
	DefaultContentLanguage         *string
	DefaultContentLanguageInSubdir *bool
	// Used for hugo deploy, not consumed by this tool.
	Deployment        map[string]any
	DisableFastRender *bool
	DisableKinds      []string
	DisableLiveReload *bool
	EnableEmoji       *bool
	EnableRobotsTXT   *bool
	Environment       *string
	// Controls how Hugo extracts dates from front matter.
	Frontmatter    map[string]any
	HasCJKLanguage *bool
	HTTPCache      *HTTPCache
	// Image processing settings, left opaque.
	Imaging      map[string]any
	LanguageCode *string
	// Per-language configuration for multilingual sites, left opaque.
	Languages           map[string]any
	MainSections        []string
	Markup              *Markup
	MediaTypes          map[string]MediaType
	Menus               map[string]any
	Minify              map[string]any
	Module              map[string]any
	OutputFormats       map[string]OutputFormat
	Outputs             map[string][]string
	Page                map[string]any
	Pagination          *Pagination
	Params              map[string]any
	Permalinks          map[string]any
	PluralizeListTitles *bool
	Privacy             map[string]any
	Related             map[string]any
	SectionPagesMenu    *string
	Security            map[string]any
	Segments            map[string]any
	Server              map[string]any
	Services            map[string]any
	Sitemap             map[string]any
	SummaryLength       *int
	Taxonomies          map[string]any
	Theme               *string
	TimeZone            *string
	Title               *string
	UglyURLs            *bool

	// Extra holds every top-level key the schema does not model, preserved
	// verbatim for re-emission.
	Extra map[string]any
}

// EffectiveLanguageCode returns the configured language code, or
// DefaultLanguageCode when the document does not set one.
func (c *Config) EffectiveLanguageCode() string {
	if c.LanguageCode != nil {
		return *c.LanguageCode
	}
	return DefaultLanguageCode
}

// Build holds buildtime behavior flags.
type Build struct {
	WriteStats   *bool
	UseResources *bool
	WriteToDisk  *bool
}

// HTTPCache configures the remote resource HTTP cache.
type HTTPCache struct {
	Dir      *string
	InMemory *bool
	MaxSize  *int
}

// Markup configures content rendering.
type Markup struct {
	Goldmark        *Goldmark
	Highlight       *Highlight
	TableOfContents *TableOfContents
}

// Goldmark configures the Goldmark markdown renderer. Its three sections
// are deep option trees the generator owns, so they stay opaque.
type Goldmark struct {
	Renderer   map[string]any
	Extensions map[string]any
	Parser     map[string]any
}

// Highlight configures syntax highlighting.
type Highlight struct {
	NoClasses      *bool
	GuessSyntax    *bool
	HLLines        *string
	LineNoStart    *int
	LineNosInTable *bool
	LineNumbers    *bool
	Style          *string
	TabWidth       *int
}

// TableOfContents configures TOC rendering depth.
type TableOfContents struct {
	EndLevel   *int
	Ordered    *bool
	StartLevel *int
}

// Pagination configures list page pagination.
type Pagination struct {
	PagerSize      *int
	Path           *string
	DisableAliases *bool
}

// MediaType describes a custom media type registration.
type MediaType struct {
	Suffixes  []string
	Delimiter *string
	MediaType *string
	Priority  *int
	Charset   *string
	Others    map[string]any
}

// OutputFormat describes a custom output format registration.
type OutputFormat struct {
	MediaType     *string
	BaseName      *string
	IsPlainText   *bool
	NoUgly        *bool
	Permalinkable *bool
	IsHTML        *bool
	IsRSS         *bool
	IsJSON        *bool
	IsAMP         *bool
	Rel           *string
	Suffix        *string
	Protocol      *string
}

// MenuLink is the shape of a single entry inside the menus table. The menus
// table itself stays opaque on parse; MenuLink exists for building menus
// programmatically.
type MenuLink struct {
	Name       string
	URL        string
	Weight     *int
	Identifier *string
	Parent     *string
}

// Map returns the menu link as a generic table suitable for placing inside
// Config.Menus.
func (m MenuLink) Map() map[string]any {
	entry := map[string]any{
		"name": m.Name,
		"url":  m.URL,
	}
	if m.Weight != nil {
		entry["weight"] = int64(*m.Weight)
	}
	if m.Identifier != nil {
		entry["identifier"] = *m.Identifier
	}
	if m.Parent != nil {
		entry["parent"] = *m.Parent
	}
	return entry
}

// URL is a validated absolute http(s) URL in normalized form.
type URL struct {
	raw string
}

// ParseBaseURL validates and normalizes an absolute http(s) URL. A URL with
// an empty path gains a trailing slash, so "https://example.com" becomes
// "https://example.com/".
func ParseBaseURL(raw string) (URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return URL{}, fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return URL{}, errors.New("URL must include a host")
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return URL{raw: u.String()}, nil
}

// String returns the normalized URL text.
func (u URL) String() string {
	return u.raw
}

// IsZero reports whether the URL is unset.
func (u URL) IsZero() bool {
	return u.raw == ""
}
