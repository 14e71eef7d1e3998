package siteconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripIntegrity(t *testing.T) {
	first, err := Parse([]byte(paigeConfig))
	require.NoError(t, err)

	out, err := first.Serialize()
	require.NoError(t, err)

	second, err := Parse(out)
	require.NoError(t, err)

	// Every modeled field and every extension bag entry must survive the
	// load-then-save cycle.
	assert.Equal(t, first, second)
}

func TestSerializeIsStable(t *testing.T) {
	cfg, err := Parse([]byte(paigeConfig))
	require.NoError(t, err)

	once, err := cfg.Serialize()
	require.NoError(t, err)

	reparsed, err := Parse(once)
	require.NoError(t, err)
	twice, err := reparsed.Serialize()
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestSerializeNormalizesBaseURL(t *testing.T) {
	cfg, err := Parse([]byte(`baseurl = "https://example.com"`))
	require.NoError(t, err)

	out, err := cfg.Serialize()
	require.NoError(t, err)

	assert.Contains(t, string(out), `baseURL = "https://example.com/"`)
	// The legacy spelling is rewritten to canonical form.
	assert.NotContains(t, string(out), "baseurl")
}

func TestSerializeOmitsAbsentFields(t *testing.T) {
	cfg, err := Parse([]byte(`baseURL = "https://example.com/"`))
	require.NoError(t, err)

	out, err := cfg.Serialize()
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "baseURL")
	// The in-memory languageCode default must not be written out.
	assert.NotContains(t, text, "languageCode")
	assert.NotContains(t, text, "title")
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(text), "\n")+1, "expected a single line, got:\n%s", text)
}

func TestSerializeEmitsCanonicalSpellings(t *testing.T) {
	doc := `
baseurl = "https://example.com/"
uglyurls = true
summarylength = 30

[markup.highlight]
linenostable = true
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	out, err := cfg.Serialize()
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "uglyURLs = true")
	assert.Contains(t, text, "summaryLength = 30")
	assert.Contains(t, text, "lineNosInTable = true")
}

func TestSerializeMergesExtensionBag(t *testing.T) {
	cfg, err := Parse([]byte(`baseURL = "https://example.com/"`))
	require.NoError(t, err)

	cfg.Extra = map[string]any{
		"relativeURLs": true,
		"custom":       map[string]any{"answer": int64(42)},
	}

	out, err := cfg.Serialize()
	require.NoError(t, err)

	second, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, true, second.Extra["relativeURLs"])
	assert.Equal(t, map[string]any{"answer": int64(42)}, second.Extra["custom"])
}

func TestModeledFieldWinsOverBagCollision(t *testing.T) {
	cfg, err := Parse([]byte(`baseURL = "https://example.com/"`))
	require.NoError(t, err)

	// This state cannot arise from Parse; construct it directly to pin the
	// merge precedence.
	cfg.Title = ptr("Real Title")
	cfg.Extra = map[string]any{"title": "Shadowed"}

	out, err := cfg.Serialize()
	require.NoError(t, err)

	second, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, ptr("Real Title"), second.Title)
}

func TestSerializeMenusFromMenuLinks(t *testing.T) {
	cfg, err := Parse([]byte(`baseURL = "https://example.com/"`))
	require.NoError(t, err)

	cfg.Menus = map[string]any{
		"main": []map[string]any{
			MenuLink{Name: "Home", URL: "/", Weight: ptr(10)}.Map(),
			MenuLink{Name: "About", URL: "/about/", Weight: ptr(20)}.Map(),
		},
	}

	out, err := cfg.Serialize()
	require.NoError(t, err)

	second, err := Parse(out)
	require.NoError(t, err)
	entries, ok := second.Menus["main"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "Home", entries[0]["name"])
	assert.Equal(t, int64(10), entries[0]["weight"])
}

func TestWriteFileRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(paigeConfig))
	require.NoError(t, err)

	path := t.TempDir() + "/hugo.toml"
	require.NoError(t, cfg.WriteFile(path))

	reloaded, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}
