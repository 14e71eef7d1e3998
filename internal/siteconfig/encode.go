package siteconfig

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Serialize encodes the configuration to TOML. Only fields holding a value
// are emitted; extension bag entries are merged at the top level, with
// modeled fields taking precedence should a key ever collide. Output is
// deterministic: the encoder sorts keys and writes plain keys before
// tables.
func (c *Config) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c.toMap()); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the configuration and writes it to path.
func (c *Config) WriteFile(path string) error {
	data, err := c.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}

func (c *Config) toMap() map[string]any {
	doc := make(map[string]any, len(c.Extra)+16)
	for k, v := range c.Extra {
		doc[k] = v
	}

	if !c.BaseURL.IsZero() {
		doc["baseURL"] = c.BaseURL.String()
	}
	putTable(doc, "build", buildMap(c.Build))
	putBool(doc, "buildDrafts", c.BuildDrafts)
	putBool(doc, "buildExpired", c.BuildExpired)
	putBool(doc, "buildFuture", c.BuildFuture)
	putTable(doc, "caches", c.Caches)
	putBool(doc, "canonifyURLs", c.CanonifyURLs)
	putBool(doc, "capitalizelistTitles", c.CapitalizeListTitles)
	putTable(doc, "cascade", c.Cascade)
	putTable(doc, "contentTypes", c.ContentTypes)
	putString(doc, "copyright", c.Copyright)
	putString(doc, "defaultContentLanguage", c.DefaultContentLanguage)
	putBool(doc, "defaultContentLanguageInSubdir", c.DefaultContentLanguageInSubdir)
	putTable(doc, "deployment", c.Deployment)
	putBool(doc, "disableFastRender", c.DisableFastRender)
	putStrings(doc, "disableKinds", c.DisableKinds)
	putBool(doc, "disableLiveReload", c.DisableLiveReload)
	putBool(doc, "enableEmoji", c.EnableEmoji)
	putBool(doc, "enableRobotsTXT", c.EnableRobotsTXT)
	putString(doc, "environment", c.Environment)
	putTable(doc, "frontmatter", c.Frontmatter)
	putBool(doc, "hasCjkLanguage", c.HasCJKLanguage)
	putTable(doc, "HTTPcache", httpCacheMap(c.HTTPCache))
	putTable(doc, "imaging", c.Imaging)
	putString(doc, "languageCode", c.LanguageCode)
	putTable(doc, "languages", c.Languages)
	putStrings(doc, "mainSections", c.MainSections)
	putTable(doc, "markup", markupMap(c.Markup))
	putTable(doc, "mediaTypes", mediaTypesMap(c.MediaTypes))
	putTable(doc, "menus", c.Menus)
	putTable(doc, "minify", c.Minify)
	putTable(doc, "module", c.Module)
	putTable(doc, "outputFormats", outputFormatsMap(c.OutputFormats))
	if c.Outputs != nil {
		doc["outputs"] = c.Outputs
	}
	putTable(doc, "page", c.Page)
	putTable(doc, "pagination", paginationMap(c.Pagination))
	putTable(doc, "params", c.Params)
	putTable(doc, "permalinks", c.Permalinks)
	putBool(doc, "pluralizelistTitles", c.PluralizeListTitles)
	putTable(doc, "privacy", c.Privacy)
	putTable(doc, "related", c.Related)
	putString(doc, "sectionPagesMenu", c.SectionPagesMenu)
	putTable(doc, "security", c.Security)
	putTable(doc, "segments", c.Segments)
	putTable(doc, "server", c.Server)
	putTable(doc, "services", c.Services)
	putTable(doc, "sitemap", c.Sitemap)
	putInt(doc, "summaryLength", c.SummaryLength)
	putTable(doc, "taxonomies", c.Taxonomies)
	putString(doc, "theme", c.Theme)
	putString(doc, "timeZone", c.TimeZone)
	putString(doc, "title", c.Title)
	putBool(doc, "uglyURLs", c.UglyURLs)

	return doc
}

func putBool(doc map[string]any, key string, v *bool) {
	if v != nil {
		doc[key] = *v
	}
}

func putString(doc map[string]any, key string, v *string) {
	if v != nil {
		doc[key] = *v
	}
}

func putInt(doc map[string]any, key string, v *int) {
	if v != nil {
		doc[key] = int64(*v)
	}
}

func putStrings(doc map[string]any, key string, v []string) {
	if v != nil {
		doc[key] = v
	}
}

func putTable(doc map[string]any, key string, v map[string]any) {
	if v != nil {
		doc[key] = v
	}
}

func buildMap(b *Build) map[string]any {
	if b == nil {
		return nil
	}
	m := map[string]any{}
	putBool(m, "writeStats", b.WriteStats)
	putBool(m, "useResources", b.UseResources)
	putBool(m, "writeToDisk", b.WriteToDisk)
	return m
}

func httpCacheMap(h *HTTPCache) map[string]any {
	if h == nil {
		return nil
	}
	m := map[string]any{}
	putString(m, "dir", h.Dir)
	putBool(m, "inMemory", h.InMemory)
	putInt(m, "maxSize", h.MaxSize)
	return m
}

func markupMap(mk *Markup) map[string]any {
	if mk == nil {
		return nil
	}
	m := map[string]any{}
	putTable(m, "goldmark", goldmarkMap(mk.Goldmark))
	putTable(m, "highlight", highlightMap(mk.Highlight))
	putTable(m, "tableOfContents", tableOfContentsMap(mk.TableOfContents))
	return m
}

func goldmarkMap(g *Goldmark) map[string]any {
	if g == nil {
		return nil
	}
	m := map[string]any{}
	putTable(m, "renderer", g.Renderer)
	putTable(m, "extensions", g.Extensions)
	putTable(m, "parser", g.Parser)
	return m
}

func highlightMap(h *Highlight) map[string]any {
	if h == nil {
		return nil
	}
	m := map[string]any{}
	putBool(m, "noClasses", h.NoClasses)
	putBool(m, "guessSyntax", h.GuessSyntax)
	putString(m, "hl_Lines", h.HLLines)
	putInt(m, "lineNoStart", h.LineNoStart)
	putBool(m, "lineNosInTable", h.LineNosInTable)
	putBool(m, "lineNumbers", h.LineNumbers)
	putString(m, "style", h.Style)
	putInt(m, "tabWidth", h.TabWidth)
	return m
}

func tableOfContentsMap(t *TableOfContents) map[string]any {
	if t == nil {
		return nil
	}
	m := map[string]any{}
	putInt(m, "endLevel", t.EndLevel)
	putBool(m, "ordered", t.Ordered)
	putInt(m, "startLevel", t.StartLevel)
	return m
}

func paginationMap(p *Pagination) map[string]any {
	if p == nil {
		return nil
	}
	m := map[string]any{}
	putInt(m, "pagerSize", p.PagerSize)
	putString(m, "path", p.Path)
	putBool(m, "disableAliases", p.DisableAliases)
	return m
}

func mediaTypesMap(types map[string]MediaType) map[string]any {
	if types == nil {
		return nil
	}
	out := make(map[string]any, len(types))
	for name, mt := range types {
		entry := map[string]any{}
		putStrings(entry, "suffixes", mt.Suffixes)
		putString(entry, "delimiter", mt.Delimiter)
		putString(entry, "mediaType", mt.MediaType)
		putInt(entry, "priority", mt.Priority)
		putString(entry, "charset", mt.Charset)
		putTable(entry, "others", mt.Others)
		out[name] = entry
	}
	return out
}

func outputFormatsMap(formats map[string]OutputFormat) map[string]any {
	if formats == nil {
		return nil
	}
	out := make(map[string]any, len(formats))
	for name, of := range formats {
		entry := map[string]any{}
		putString(entry, "mediaType", of.MediaType)
		putString(entry, "baseName", of.BaseName)
		putBool(entry, "isPlainText", of.IsPlainText)
		putBool(entry, "noUgly", of.NoUgly)
		putBool(entry, "permalinkable", of.Permalinkable)
		putBool(entry, "isHTML", of.IsHTML)
		putBool(entry, "isRSS", of.IsRSS)
		putBool(entry, "isJSON", of.IsJSON)
		putBool(entry, "isAMP", of.IsAMP)
		putString(entry, "rel", of.Rel)
		putString(entry, "suffix", of.Suffix)
		putString(entry, "protocol", of.Protocol)
		out[name] = entry
	}
	return out
}
