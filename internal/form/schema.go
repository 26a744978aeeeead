// Package form validates submitted form values against a declarative schema.
package form

import (
	"fmt"
	"strings"
)

// Kind is the kind of input a field accepts.
type Kind int

const (
	KindText Kind = iota
	KindChoice
)

// Field describes one form input.
type Field struct {
	Name      string
	Label     string
	Kind      Kind
	Required  bool
	Choices   []string
	MaxLength int
}

// Schema is the ordered list of fields of a form.
type Schema []Field

// Field returns the field called name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Values maps field names to submitted values.
type Values map[string]string

// FieldErrors maps field names to their validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, " ")))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// presenceTag is checked against the trimmed value of text fields.
func (f Field) presenceTag() string {
	if f.Required {
		return "required"
	}
	return ""
}

// contentTag is checked against the value as submitted, which is also the
// value that gets stored.
func (f Field) contentTag() string {
	rules := []string{"omitempty"}
	if f.MaxLength > 0 {
		rules = append(rules, fmt.Sprintf("max=%d", f.MaxLength))
	}
	if f.Kind == KindChoice {
		rules = append(rules, "oneof="+choiceParam(f.Choices))
	}
	if len(rules) == 1 {
		return ""
	}
	return strings.Join(rules, ",")
}

var tagEscaper = strings.NewReplacer(",", "0x2C", "|", "0x7C")

// choiceParam quotes choices for the oneof rule.
func choiceParam(choices []string) string {
	quoted := make([]string, len(choices))
	for i, c := range choices {
		c = tagEscaper.Replace(c)
		if strings.ContainsAny(c, " \t") {
			c = "'" + c + "'"
		}
		quoted[i] = c
	}
	return strings.Join(quoted, " ")
}
