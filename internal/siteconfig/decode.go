package siteconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Parse decodes a TOML site configuration document. Syntactic failures
// return a *DecodeError; semantic failures return a *ValidationError
// listing every offending field. Unrecognized top-level keys are kept in
// Config.Extra.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}

	cfg := &Config{}
	errs := &errorList{}

	rest := make(map[string]any, len(raw))
	for k, v := range raw {
		rest[k] = v
	}

	// baseURL is the only required field.
	if v, key, ok := lookupDelete(rest, "baseURL", "baseurl"); ok {
		if s := asString(v, key, errs); s != nil {
			u, err := ParseBaseURL(*s)
			if err != nil {
				errs.addf(key, "%v", err)
			} else {
				cfg.BaseURL = u
			}
		}
	} else {
		errs.addf("baseURL", "required field is missing")
	}

	for _, f := range configFields {
		v, key, ok := lookupDelete(rest, f.canonical, f.legacy)
		if !ok {
			continue
		}
		f.assign(cfg, v, key, errs)
	}

	// Whatever was not claimed by a modeled field is preserved verbatim.
	if len(rest) > 0 {
		cfg.Extra = rest
	}

	if len(errs.fields) > 0 {
		return nil, &ValidationError{Fields: errs.fields}
	}
	return cfg, nil
}

// ParseFile reads and parses the configuration document at path.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return Parse(data)
}

// errorList accumulates field-level validation failures during a parse.
type errorList struct {
	fields []FieldError
}

func (l *errorList) addf(field, format string, args ...any) {
	l.fields = append(l.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// lookupDelete returns the value of the first present spelling, checking
// spellings in order, and removes every present spelling from the map. With
// the canonical spelling listed first this implements the canonical-wins
// tie-break, and consuming both spellings keeps aliases out of the
// extension bag.
func lookupDelete(m map[string]any, spellings ...string) (any, string, bool) {
	var (
		val   any
		key   string
		found bool
	)
	for _, s := range spellings {
		if s == "" {
			continue
		}
		v, ok := m[s]
		if !ok {
			continue
		}
		if !found {
			val, key, found = v, s, true
		}
		delete(m, s)
	}
	return val, key, found
}

// lookup returns the value of the first present spelling without mutating
// the table. Used inside nested tables, which carry no extension bag.
func lookup(m map[string]any, spellings ...string) (any, string, bool) {
	for _, s := range spellings {
		if s == "" {
			continue
		}
		if v, ok := m[s]; ok {
			return v, s, true
		}
	}
	return nil, "", false
}

func asBool(v any, field string, errs *errorList) *bool {
	b, ok := v.(bool)
	if !ok {
		errs.addf(field, "expected boolean, got %s", tomlTypeName(v))
		return nil
	}
	return &b
}

func asString(v any, field string, errs *errorList) *string {
	s, ok := v.(string)
	if !ok {
		errs.addf(field, "expected string, got %s", tomlTypeName(v))
		return nil
	}
	return &s
}

func asInt(v any, field string, errs *errorList) *int {
	n, ok := v.(int64)
	if !ok {
		errs.addf(field, "expected integer, got %s", tomlTypeName(v))
		return nil
	}
	i := int(n)
	return &i
}

func asStringSlice(v any, field string, errs *errorList) []string {
	items, ok := v.([]any)
	if !ok {
		errs.addf(field, "expected array of strings, got %s", tomlTypeName(v))
		return nil
	}
	out := make([]string, 0, len(items))
	bad := false
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			errs.addf(fmt.Sprintf("%s[%d]", field, i), "expected string, got %s", tomlTypeName(item))
			bad = true
			continue
		}
		out = append(out, s)
	}
	if bad {
		return nil
	}
	return out
}

func asTable(v any, field string, errs *errorList) map[string]any {
	t, ok := v.(map[string]any)
	if !ok {
		errs.addf(field, "expected table, got %s", tomlTypeName(v))
		return nil
	}
	return t
}

func asStringListMap(v any, field string, errs *errorList) map[string][]string {
	tbl := asTable(v, field, errs)
	if tbl == nil {
		return nil
	}
	out := make(map[string][]string, len(tbl))
	bad := false
	for key, raw := range tbl {
		list := asStringSlice(raw, field+"."+key, errs)
		if list == nil {
			bad = true
			continue
		}
		out[key] = list
	}
	if bad {
		return nil
	}
	return out
}

// tomlTypeName names the decoded representation of a TOML value in the
// vocabulary of the format, for error messages.
func tomlTypeName(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case time.Time:
		return "datetime"
	case []map[string]any:
		return "array of tables"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
