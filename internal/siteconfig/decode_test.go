package siteconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paigeConfig is a reasonably complex real-world configuration exercising
// lowercase aliases, opaque sections, arrays of tables, and unrecognized
// top-level keys.
const paigeConfig = `
baseurl = "https://example.com"
enablerobotstxt = true
timezone = "America/Los_Angeles"
titlecasestyle = "Go"

[languages.en]
copyright = "© Will Faught"
languagecode = "en-us"
languagedirection = "ltr"
languagename = "English"
title = "Paige"
weight = 10

[languages.en.params.paige.site]
description = "Powerful, pliable pixel perfection"

[markup.goldmark.renderer]
unsafe = true

[markup.highlight]
noclasses = false
style = "github"

[[module.imports]]
path = "github.com/willfaught/paige"

[outputs]
home = ["atom", "html", "paige-search", "rss"]
section = ["atom", "html", "rss"]
taxonomy = ["atom", "html", "rss"]
term = ["atom", "html", "rss"]

[pagination]
pagersize = 50

[[params.paige.feeds.atom.authors]]
email = "example@example.com"
name = "John Doe"
url = "https://example.com"

[params.paige.feeds.rss]
managing_editor = "example@example.com (John Doe)"
web_master = "example@example.com (John Doe)"

[params.paige.pages]
disable_authors = true
disable_date = true
disable_toc = true

[paige.pages.base_schema]
isAccessibleForFree = true
isFamilyFriendly = true

[params.paige.site]
disable_breadcrumbs = true
disable_credit = true

[taxonomies]
author = "authors"
category = "categories"
series = "series"
tag = "tags"
`

func ptr[T any](v T) *T {
	return &v
}

func TestParsePaigeConfig(t *testing.T) {
	cfg, err := Parse([]byte(paigeConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", cfg.BaseURL.String())
	assert.Equal(t, ptr(true), cfg.EnableRobotsTXT)
	assert.Equal(t, ptr("America/Los_Angeles"), cfg.TimeZone)

	require.Contains(t, cfg.Languages, "en")
	en, ok := cfg.Languages["en"].(map[string]any)
	require.True(t, ok, "languages.en should decode as a table")
	assert.Equal(t, "en-us", en["languagecode"])
	assert.Equal(t, "English", en["languagename"])
	assert.Equal(t, int64(10), en["weight"])

	require.NotNil(t, cfg.Markup)
	require.NotNil(t, cfg.Markup.Goldmark)
	assert.Equal(t, map[string]any{"unsafe": true}, cfg.Markup.Goldmark.Renderer)
	require.NotNil(t, cfg.Markup.Highlight)
	assert.Equal(t, ptr(false), cfg.Markup.Highlight.NoClasses)
	assert.Equal(t, ptr("github"), cfg.Markup.Highlight.Style)

	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, ptr(50), cfg.Pagination.PagerSize)

	assert.Equal(t, []string{"atom", "html", "paige-search", "rss"}, cfg.Outputs["home"])

	assert.Equal(t, map[string]any{
		"author":   "authors",
		"category": "categories",
		"series":   "series",
		"tag":      "tags",
	}, cfg.Taxonomies)

	paige, ok := cfg.Params["paige"].(map[string]any)
	require.True(t, ok)
	pages, ok := paige["pages"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, pages["disable_authors"])
	assert.Equal(t, true, pages["disable_toc"])
}

func TestParsePreservesUnrecognizedKeys(t *testing.T) {
	cfg, err := Parse([]byte(paigeConfig))
	require.NoError(t, err)

	// Unknown scalar and unknown table both land in the extension bag.
	assert.Equal(t, "Go", cfg.Extra["titlecasestyle"])
	assert.Contains(t, cfg.Extra, "paige")

	// Matched keys never leak into the bag, under either spelling.
	for _, f := range configFields {
		assert.NotContains(t, cfg.Extra, f.canonical)
		if f.legacy != "" {
			assert.NotContains(t, cfg.Extra, f.legacy)
		}
	}
	assert.NotContains(t, cfg.Extra, "baseURL")
	assert.NotContains(t, cfg.Extra, "baseurl")
}

func TestParseMissingBaseURL(t *testing.T) {
	_, err := Parse([]byte(`title = "No URL here"`))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "baseURL", verr.Fields[0].Field)
	assert.Contains(t, err.Error(), "baseURL")
}

func TestParseBaseURLNormalization(t *testing.T) {
	cfg, err := Parse([]byte(`baseURL = "https://example.com"`))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", cfg.BaseURL.String())

	cfg, err = Parse([]byte(`baseURL = "http://example.com/blog"`))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/blog", cfg.BaseURL.String())
}

func TestParseRejectsBadBaseURL(t *testing.T) {
	cases := map[string]string{
		"wrong scheme": `baseURL = "ftp://example.com"`,
		"no host":      `baseURL = "https://"`,
		"wrong type":   `baseURL = 42`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
		})
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("this is not valid TOML"))
	require.Error(t, err)

	var derr *DecodeError
	assert.True(t, errors.As(err, &derr))
}

func TestParseCanonicalWinsOverAlias(t *testing.T) {
	doc := `
baseURL = "https://example.com/"
buildDrafts = true
builddrafts = false
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	// Both spellings are consumed and the canonical value is kept.
	assert.Equal(t, ptr(true), cfg.BuildDrafts)
	assert.NotContains(t, cfg.Extra, "buildDrafts")
	assert.NotContains(t, cfg.Extra, "builddrafts")
}

func TestParseAccumulatesFieldErrors(t *testing.T) {
	doc := `
baseURL = "https://example.com/"
title = 3
summarylength = "long"

[markup.highlight]
tabwidth = "four"
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "summarylength")
	assert.Contains(t, fields, "markup.highlight.tabwidth")
	assert.Contains(t, err.Error(), "3 fields failed validation")
}

func TestParseWrongElementTypeInList(t *testing.T) {
	doc := `
baseURL = "https://example.com/"
disableKinds = ["taxonomy", 7]
`
	_, err := Parse([]byte(doc))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "disableKinds[1]", verr.Fields[0].Field)
}

func TestAliasTableHasNoDuplicateSpellings(t *testing.T) {
	seen := map[string]bool{"baseURL": true, "baseurl": true}
	for _, f := range configFields {
		assert.False(t, seen[f.canonical], "duplicate spelling %q", f.canonical)
		seen[f.canonical] = true
		if f.legacy != "" {
			assert.False(t, seen[f.legacy], "duplicate spelling %q", f.legacy)
			seen[f.legacy] = true
		}
	}
}

func TestEffectiveLanguageCode(t *testing.T) {
	cfg, err := Parse([]byte(`baseURL = "https://example.com/"`))
	require.NoError(t, err)
	assert.Nil(t, cfg.LanguageCode)
	assert.Equal(t, DefaultLanguageCode, cfg.EffectiveLanguageCode())

	cfg, err = Parse([]byte("baseURL = \"https://example.com/\"\nlanguageCode = \"de-de\""))
	require.NoError(t, err)
	assert.Equal(t, "de-de", cfg.EffectiveLanguageCode())
}

func TestParseMediaTypesAndOutputFormats(t *testing.T) {
	doc := `
baseURL = "https://example.com/"

[mediaTypes."text/enriched"]
suffixes = ["enr"]
priority = 2

[outputFormats.atom]
mediatype = "application/rss+xml"
baseName = "feed"
isHTML = false
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	mt, ok := cfg.MediaTypes["text/enriched"]
	require.True(t, ok)
	assert.Equal(t, []string{"enr"}, mt.Suffixes)
	assert.Equal(t, ptr(2), mt.Priority)

	of, ok := cfg.OutputFormats["atom"]
	require.True(t, ok)
	assert.Equal(t, ptr("application/rss+xml"), of.MediaType)
	assert.Equal(t, ptr("feed"), of.BaseName)
	assert.Equal(t, ptr(false), of.IsHTML)
}
