package siteconfig

import (
	"fmt"
	"strings"
)

// DecodeError indicates the input was not syntactically valid TOML.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed configuration document: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FieldError describes a single field that failed validation. Field is the
// key as it appeared in the document, with dots joining nested table keys.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError reports every field that failed validation. Parsing
// collects all field-level violations before failing, so one pass surfaces
// the complete list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return "invalid site configuration: " + e.Fields[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid site configuration: %d fields failed validation:", len(e.Fields))
	for _, f := range e.Fields {
		b.WriteString("\n  " + f.Error())
	}
	return b.String()
}
