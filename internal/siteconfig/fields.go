package siteconfig

// fieldSpec binds a document key to the assignment of its Config field.
// canonical is the generator's preferred mixed-case spelling; legacy is the
// all-lowercase spelling accepted for compatibility, empty when the
// canonical spelling is already lowercase. The table is the single source
// of truth for alias resolution: parse walks it in order, so resolution is
// deterministic and no two entries may claim the same spelling.
type fieldSpec struct {
	canonical string
	legacy    string
	assign    func(c *Config, v any, key string, errs *errorList)
}

var configFields = []fieldSpec{
	{"build", "", func(c *Config, v any, key string, errs *errorList) {
		c.Build = decodeBuild(v, key, errs)
	}},
	{"buildDrafts", "builddrafts", func(c *Config, v any, key string, errs *errorList) {
		c.BuildDrafts = asBool(v, key, errs)
	}},
	{"buildExpired", "buildexpired", func(c *Config, v any, key string, errs *errorList) {
		c.BuildExpired = asBool(v, key, errs)
	}},
	{"buildFuture", "buildfuture", func(c *Config, v any, key string, errs *errorList) {
		c.BuildFuture = asBool(v, key, errs)
	}},
	{"caches", "", func(c *Config, v any, key string, errs *errorList) {
		c.Caches = asTable(v, key, errs)
	}},
	{"canonifyURLs", "canonifyurls", func(c *Config, v any, key string, errs *errorList) {
		c.CanonifyURLs = asBool(v, key, errs)
	}},
	{"capitalizelistTitles", "capitalizelisttitles", func(c *Config, v any, key string, errs *errorList) {
		c.CapitalizeListTitles = asBool(v, key, errs)
	}},
	{"cascade", "", func(c *Config, v any, key string, errs *errorList) {
		c.Cascade = asTable(v, key, errs)
	}},
	{"contentTypes", "contenttypes", func(c *Config, v any, key string, errs *errorList) {
		c.ContentTypes = asTable(v, key, errs)
	}},
	{"copyright", "", func(c *Config, v any, key string, errs *errorList) {
		c.Copyright = asString(v, key, errs)
	}},
	{"defaultContentLanguage", "defaultcontentlanguage", func(c *Config, v any, key string, errs *errorList) {
		c.DefaultContentLanguage = asString(v, key, errs)
	}},
	{"defaultContentLanguageInSubdir", "defaultcontentlanguageinsubdir", func(c *Config, v any, key string, errs *errorList) {
		c.DefaultContentLanguageInSubdir = asBool(v, key, errs)
	}},
	{"deployment", "", func(c *Config, v any, key string, errs *errorList) {
		c.Deployment = asTable(v, key, errs)
	}},
	{"disableFastRender", "disablefastrender", func(c *Config, v any, key string, errs *errorList) {
		c.DisableFastRender = asBool(v, key, errs)
	}},
	{"disableKinds", "disablekinds", func(c *Config, v any, key string, errs *errorList) {
		c.DisableKinds = asStringSlice(v, key, errs)
	}},
	{"disableLiveReload", "disablelivereload", func(c *Config, v any, key string, errs *errorList) {
		c.DisableLiveReload = asBool(v, key, errs)
	}},
	{"enableEmoji", "enableemoji", func(c *Config, v any, key string, errs *errorList) {
		c.EnableEmoji = asBool(v, key, errs)
	}},
	{"enableRobotsTXT", "enablerobotstxt", func(c *Config, v any, key string, errs *errorList) {
		c.EnableRobotsTXT = asBool(v, key, errs)
	}},
	{"environment", "", func(c *Config, v any, key string, errs *errorList) {
		c.Environment = asString(v, key, errs)
	}},
	{"frontmatter", "", func(c *Config, v any, key string, errs *errorList) {
		c.Frontmatter = asTable(v, key, errs)
	}},
	{"hasCjkLanguage", "hascjklanguage", func(c *Config, v any, key string, errs *errorList) {
		c.HasCJKLanguage = asBool(v, key, errs)
	}},
	{"HTTPcache", "httpcache", func(c *Config, v any, key string, errs *errorList) {
		c.HTTPCache = decodeHTTPCache(v, key, errs)
	}},
	{"imaging", "", func(c *Config, v any, key string, errs *errorList) {
		c.Imaging = asTable(v, key, errs)
	}},
	{"languageCode", "languagecode", func(c *Config, v any, key string, errs *errorList) {
		c.LanguageCode = asString(v, key, errs)
	}},
	{"languages", "", func(c *Config, v any, key string, errs *errorList) {
		c.Languages = asTable(v, key, errs)
	}},
	{"mainSections", "mainsections", func(c *Config, v any, key string, errs *errorList) {
		c.MainSections = asStringSlice(v, key, errs)
	}},
	{"markup", "", func(c *Config, v any, key string, errs *errorList) {
		c.Markup = decodeMarkup(v, key, errs)
	}},
	{"mediaTypes", "mediatypes", func(c *Config, v any, key string, errs *errorList) {
		c.MediaTypes = decodeMediaTypes(v, key, errs)
	}},
	{"menus", "", func(c *Config, v any, key string, errs *errorList) {
		c.Menus = asTable(v, key, errs)
	}},
	{"minify", "", func(c *Config, v any, key string, errs *errorList) {
		c.Minify = asTable(v, key, errs)
	}},
	{"module", "", func(c *Config, v any, key string, errs *errorList) {
		c.Module = asTable(v, key, errs)
	}},
	{"outputFormats", "outputformats", func(c *Config, v any, key string, errs *errorList) {
		c.OutputFormats = decodeOutputFormats(v, key, errs)
	}},
	{"outputs", "", func(c *Config, v any, key string, errs *errorList) {
		c.Outputs = asStringListMap(v, key, errs)
	}},
	{"page", "", func(c *Config, v any, key string, errs *errorList) {
		c.Page = asTable(v, key, errs)
	}},
	{"pagination", "", func(c *Config, v any, key string, errs *errorList) {
		c.Pagination = decodePagination(v, key, errs)
	}},
	{"params", "", func(c *Config, v any, key string, errs *errorList) {
		c.Params = asTable(v, key, errs)
	}},
	{"permalinks", "", func(c *Config, v any, key string, errs *errorList) {
		c.Permalinks = asTable(v, key, errs)
	}},
	{"pluralizelistTitles", "pluralizelisttitles", func(c *Config, v any, key string, errs *errorList) {
		c.PluralizeListTitles = asBool(v, key, errs)
	}},
	{"privacy", "", func(c *Config, v any, key string, errs *errorList) {
		c.Privacy = asTable(v, key, errs)
	}},
	{"related", "", func(c *Config, v any, key string, errs *errorList) {
		c.Related = asTable(v, key, errs)
	}},
	{"sectionPagesMenu", "sectionpagesmenu", func(c *Config, v any, key string, errs *errorList) {
		c.SectionPagesMenu = asString(v, key, errs)
	}},
	{"security", "", func(c *Config, v any, key string, errs *errorList) {
		c.Security = asTable(v, key, errs)
	}},
	{"segments", "", func(c *Config, v any, key string, errs *errorList) {
		c.Segments = asTable(v, key, errs)
	}},
	{"server", "", func(c *Config, v any, key string, errs *errorList) {
		c.Server = asTable(v, key, errs)
	}},
	{"services", "", func(c *Config, v any, key string, errs *errorList) {
		c.Services = asTable(v, key, errs)
	}},
	{"sitemap", "", func(c *Config, v any, key string, errs *errorList) {
		c.Sitemap = asTable(v, key, errs)
	}},
	{"summaryLength", "summarylength", func(c *Config, v any, key string, errs *errorList) {
		c.SummaryLength = asInt(v, key, errs)
	}},
	{"taxonomies", "", func(c *Config, v any, key string, errs *errorList) {
		c.Taxonomies = asTable(v, key, errs)
	}},
	{"theme", "", func(c *Config, v any, key string, errs *errorList) {
		c.Theme = asString(v, key, errs)
	}},
	{"timeZone", "timezone", func(c *Config, v any, key string, errs *errorList) {
		c.TimeZone = asString(v, key, errs)
	}},
	{"title", "", func(c *Config, v any, key string, errs *errorList) {
		c.Title = asString(v, key, errs)
	}},
	{"uglyURLs", "uglyurls", func(c *Config, v any, key string, errs *errorList) {
		c.UglyURLs = asBool(v, key, errs)
	}},
}

func decodeBuild(v any, field string, errs *errorList) *Build {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	b := &Build{}
	if v, key, ok := lookup(tbl, "writeStats", "writestats"); ok {
		b.WriteStats = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "useResources", "useresources"); ok {
		b.UseResources = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "writeToDisk", "writetodisk"); ok {
		b.WriteToDisk = asBool(v, field+"."+key, errs)
	}
	return b
}

func decodeHTTPCache(v any, field string, errs *errorList) *HTTPCache {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	h := &HTTPCache{}
	if v, key, ok := lookup(tbl, "dir"); ok {
		h.Dir = asString(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "inMemory", "inmemory"); ok {
		h.InMemory = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "maxSize", "maxsize"); ok {
		h.MaxSize = asInt(v, field+"."+key, errs)
	}
	return h
}

func decodeMarkup(v any, field string, errs *errorList) *Markup {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	m := &Markup{}
	if v, key, ok := lookup(tbl, "goldmark"); ok {
		m.Goldmark = decodeGoldmark(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "highlight"); ok {
		m.Highlight = decodeHighlight(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "tableOfContents", "tableofcontents"); ok {
		m.TableOfContents = decodeTableOfContents(v, field+"."+key, errs)
	}
	return m
}

func decodeGoldmark(v any, field string, errs *errorList) *Goldmark {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	g := &Goldmark{}
	if v, key, ok := lookup(tbl, "renderer"); ok {
		g.Renderer = asTable(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "extensions"); ok {
		g.Extensions = asTable(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "parser"); ok {
		g.Parser = asTable(v, field+"."+key, errs)
	}
	return g
}

func decodeHighlight(v any, field string, errs *errorList) *Highlight {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	h := &Highlight{}
	if v, key, ok := lookup(tbl, "noClasses", "noclasses"); ok {
		h.NoClasses = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "guessSyntax", "guesssyntax"); ok {
		h.GuessSyntax = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "hl_Lines", "hl_lines"); ok {
		h.HLLines = asString(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "lineNoStart", "linenostart"); ok {
		h.LineNoStart = asInt(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "lineNosInTable", "linenostable"); ok {
		h.LineNosInTable = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "lineNumbers", "linenumbers"); ok {
		h.LineNumbers = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "style"); ok {
		h.Style = asString(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "tabWidth", "tabwidth"); ok {
		h.TabWidth = asInt(v, field+"."+key, errs)
	}
	return h
}

func decodeTableOfContents(v any, field string, errs *errorList) *TableOfContents {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	t := &TableOfContents{}
	if v, key, ok := lookup(tbl, "endLevel", "endlevel"); ok {
		t.EndLevel = asInt(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "ordered"); ok {
		t.Ordered = asBool(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "startLevel", "startlevel"); ok {
		t.StartLevel = asInt(v, field+"."+key, errs)
	}
	return t
}

func decodePagination(v any, field string, errs *errorList) *Pagination {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	p := &Pagination{}
	if v, key, ok := lookup(tbl, "pagerSize", "pagersize"); ok {
		p.PagerSize = asInt(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "path"); ok {
		p.Path = asString(v, field+"."+key, errs)
	}
	if v, key, ok := lookup(tbl, "disableAliases", "disablealiases"); ok {
		p.DisableAliases = asBool(v, field+"."+key, errs)
	}
	return p
}

func decodeMediaTypes(v any, field string, errs *errorList) map[string]MediaType {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	out := make(map[string]MediaType, len(tbl))
	for name, raw := range tbl {
		sub := field + "." + name
		entry := asTable(raw, sub, errs)
		if entry == nil {
			continue
		}
		mt := MediaType{}
		if v, key, ok := lookup(entry, "suffixes"); ok {
			mt.Suffixes = asStringSlice(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "delimiter"); ok {
			mt.Delimiter = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "mediaType", "mediatype"); ok {
			mt.MediaType = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "priority"); ok {
			mt.Priority = asInt(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "charset"); ok {
			mt.Charset = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "others"); ok {
			mt.Others = asTable(v, sub+"."+key, errs)
		}
		out[name] = mt
	}
	return out
}

func decodeOutputFormats(v any, field string, errs *errorList) map[string]OutputFormat {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	out := make(map[string]OutputFormat, len(tbl))
	for name, raw := range tbl {
		sub := field + "." + name
		entry := asTable(raw, sub, errs)
		if entry == nil {
			continue
		}
		of := OutputFormat{}
		if v, key, ok := lookup(entry, "mediaType", "mediatype"); ok {
			of.MediaType = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "baseName", "basename"); ok {
			of.BaseName = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "isPlainText", "isplaintext"); ok {
			of.IsPlainText = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "noUgly", "nougly"); ok {
			of.NoUgly = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "permalinkable"); ok {
			of.Permalinkable = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "isHTML", "ishtml"); ok {
			of.IsHTML = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "isRSS", "isrss"); ok {
			of.IsRSS = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "isJSON", "isjson"); ok {
			of.IsJSON = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "isAMP", "isamp"); ok {
			of.IsAMP = asBool(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "rel"); ok {
			of.Rel = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "suffix"); ok {
			of.Suffix = asString(v, sub+"."+key, errs)
		}
		if v, key, ok := lookup(entry, "protocol"); ok {
			of.Protocol = asString(v, sub+"."+key, errs)
		}
		out[name] = of
	}
	return out
}
