// Package validation evaluates declarative schemas against untrusted
// request bodies and query parameters. Evaluation is all-or-nothing: a
// schema either yields a fully normalized value set or an ordered list of
// field errors, never a partially applied subset.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is a single rule failure at a field path
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

// Join renders the error list as one human-readable string for the
// details of a validation rejection.
func (e Errors) Join() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, ", ")
}

// Field declares the rules for one string field. Rules run in the order
// type check, trim, non-empty, email shape, enum membership. Enum values
// are matched case-insensitively and coerced to their canonical form.
type Field struct {
	Name     string
	Required bool
	Trim     bool
	NonEmpty bool
	Email    bool
	Enum     []string // canonical lowercase values
}

// Schema is an ordered set of field rules plus optional cross-field
// rules. AtLeastOne, when set, requires at least one of the named fields
// to be present; it is evaluated only after all per-field rules pass.
type Schema struct {
	Fields     []Field
	AtLeastOne []string
}

// Evaluate checks in (a decoded JSON object or query-string map) against
// the schema. On success it returns a map holding only the fields that
// were present, normalized; downstream code must use these values instead
// of the raw input. Unknown fields are ignored.
func (s Schema) Evaluate(in map[string]any) (map[string]string, Errors) {
	out := make(map[string]string, len(s.Fields))
	var errs Errors

	for _, f := range s.Fields {
		raw, present := in[f.Name]
		if !present || raw == nil {
			if f.Required {
				errs = append(errs, FieldError{Field: f.Name, Message: "is required"})
			}
			continue
		}

		str, ok := raw.(string)
		if !ok {
			errs = append(errs, FieldError{Field: f.Name, Message: "must be a string"})
			continue
		}
		if f.Trim {
			str = strings.TrimSpace(str)
		}
		if f.NonEmpty && str == "" {
			errs = append(errs, FieldError{Field: f.Name, Message: "must not be empty"})
			continue
		}
		if f.Email && !emailRe.MatchString(str) {
			errs = append(errs, FieldError{Field: f.Name, Message: "must be a valid email"})
			continue
		}
		if len(f.Enum) > 0 {
			lower := strings.ToLower(str)
			found := false
			for _, v := range f.Enum {
				if lower == v {
					str = v
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, FieldError{Field: f.Name, Message: "must be one of: " + strings.Join(f.Enum, ", ")})
				continue
			}
		}
		out[f.Name] = str
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if len(s.AtLeastOne) > 0 {
		satisfied := false
		for _, name := range s.AtLeastOne {
			if _, ok := out[name]; ok {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return nil, Errors{{
				Field:   "body",
				Message: "at least one of " + strings.Join(s.AtLeastOne, ", ") + " must be provided",
			}}
		}
	}

	return out, nil
}

// PositiveInt validates a numeric query parameter. An absent value falls
// back to def; anything that does not parse as a positive integer is a
// field error, never a silent default.
func PositiveInt(name, raw string, def int) (int, *FieldError) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &FieldError{Field: name, Message: "must be a positive integer"}
	}
	return n, nil
}
