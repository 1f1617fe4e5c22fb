package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/mitchellh/copystructure"
)

// Error represents a single structural validation error.
type Error struct {
	Path     string // Dotted field location (e.g. "strikes[0].damage")
	Message  string // Human-readable error description
	Keyword  string // Violated constraint (required, type, enum, pattern, minItems)
	Expected string // What was expected
	Actual   string // What was found
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Result represents the complete validation outcome for a candidate record.
type Result struct {
	Valid  bool
	Errors []*Error
}

// AddError records a validation error on the result.
func (r *Result) AddError(err *Error) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// Validator is a compiled structural validator for one entity kind.
// Compilation happens once per kind at startup; Validate holds no state
// between calls beyond the defaults it writes into the candidate.
type Validator struct {
	schema   *Schema
	patterns map[string]*regexp.Regexp
}

var (
	validatorOnce sync.Once
	validators    map[Kind]*Validator
)

// ValidatorOf returns the compiled validator for the given kind.
func ValidatorOf(kind Kind) (*Validator, error) {
	validatorOnce.Do(func() {
		validators = make(map[Kind]*Validator, 4)
		for _, k := range []Kind{KindAction, KindItem, KindActor, KindCatalogEntry} {
			s, _ := Of(k)
			validators[k] = compile(s)
		}
	})
	v, ok := validators[kind]
	if !ok {
		return nil, fmt.Errorf("unknown record kind: %s", kind)
	}
	return v, nil
}

// compile builds a validator, pre-compiling every pattern in the schema tree.
func compile(s *Schema) *Validator {
	v := &Validator{schema: s, patterns: make(map[string]*regexp.Regexp)}
	var walk func(fields []Field)
	walk = func(fields []Field) {
		for _, f := range fields {
			if f.Pattern != "" {
				v.patterns[f.Pattern] = regexp.MustCompile(f.Pattern)
			}
			if len(f.Children) > 0 {
				walk(f.Children)
			}
		}
	}
	walk(s.Fields)
	return v
}

// Validate checks the candidate against the declared shape. Defaults declared
// for omitted optional fields are written into the candidate as a side effect,
// so a valid result leaves the candidate fully populated.
func (v *Validator) Validate(candidate map[string]any) *Result {
	result := &Result{Valid: true}
	if candidate == nil {
		result.AddError(&Error{Message: "record is missing", Keyword: "required", Expected: "object"})
		return result
	}
	v.validateFields(v.schema.Fields, candidate, "", result)
	return result
}

func (v *Validator) validateFields(fields []Field, obj map[string]any, path string, result *Result) {
	for _, f := range fields {
		fieldPath := f.Name
		if path != "" {
			fieldPath = path + "." + f.Name
		}

		val, present := obj[f.Name]
		if !present {
			if f.Required {
				result.AddError(&Error{
					Path:     fieldPath,
					Message:  fmt.Sprintf("missing required field: %s", f.Name),
					Keyword:  "required",
					Expected: string(f.Type),
				})
				continue
			}
			if f.Default != nil {
				obj[f.Name] = copyDefault(f.Default)
			}
			continue
		}

		v.validateValue(f, val, fieldPath, result)
	}
}

func (v *Validator) validateValue(f Field, val any, path string, result *Result) {
	switch f.Type {
	case FieldTypeString:
		s, ok := val.(string)
		if !ok {
			result.AddError(typeError(path, "string", val))
			return
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			result.AddError(&Error{
				Path:     path,
				Message:  fmt.Sprintf("invalid value %q", s),
				Keyword:  "enum",
				Expected: "one of: " + strings.Join(f.Enum, ", "),
				Actual:   s,
			})
			return
		}
		if f.Pattern != "" && s != "" && !v.patterns[f.Pattern].MatchString(s) {
			result.AddError(&Error{
				Path:     path,
				Message:  fmt.Sprintf("value %q does not match pattern", s),
				Keyword:  "pattern",
				Expected: f.Pattern,
				Actual:   s,
			})
		}
	case FieldTypeInt:
		if _, ok := asInt(val); !ok {
			result.AddError(typeError(path, "integer", val))
		}
	case FieldTypeNumber:
		if _, ok := asFloat(val); !ok {
			result.AddError(typeError(path, "number", val))
		}
	case FieldTypeBool:
		if _, ok := val.(bool); !ok {
			result.AddError(typeError(path, "bool", val))
		}
	case FieldTypeObject:
		m, ok := val.(map[string]any)
		if !ok {
			result.AddError(typeError(path, "object", val))
			return
		}
		if len(f.Children) > 0 {
			v.validateFields(f.Children, m, path, result)
		}
	case FieldTypeArray:
		elems, ok := asSlice(val)
		if !ok {
			result.AddError(typeError(path, "array", val))
			return
		}
		if len(elems) < f.MinItems {
			result.AddError(&Error{
				Path:     path,
				Message:  fmt.Sprintf("array has %d element(s), needs at least %d", len(elems), f.MinItems),
				Keyword:  "minItems",
				Expected: fmt.Sprintf("at least %d element(s)", f.MinItems),
				Actual:   fmt.Sprintf("%d element(s)", len(elems)),
			})
		}
		for i, elem := range elems {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if len(f.Children) > 0 {
				m, ok := elem.(map[string]any)
				if !ok {
					result.AddError(typeError(elemPath, "object", elem))
					continue
				}
				v.validateFields(f.Children, m, elemPath, result)
				continue
			}
			if f.Elem != "" {
				v.validateValue(Field{Name: f.Name, Type: f.Elem}, elem, elemPath, result)
			}
		}
	}
}

func typeError(path, expected string, val any) *Error {
	return &Error{
		Path:     path,
		Message:  fmt.Sprintf("wrong type for field '%s'", path),
		Keyword:  "type",
		Expected: expected,
		Actual:   typeName(val),
	}
}

func typeName(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return "number"
	case []any, []string:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", val)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// asInt reports whether val is a clean integer and returns it as int.
func asInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		if float32(int(n)) == n {
			return int(n), true
		}
	case float64:
		if float64(int(n)) == n {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// asFloat reports whether val is numeric and returns it as float64.
func asFloat(val any) (float64, bool) {
	switch n := val.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// asSlice accepts the slice shapes JSON decoding and normalization produce.
func asSlice(val any) ([]any, bool) {
	switch s := val.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out, true
	}
	return nil, false
}

// copyDefault deep-copies a declared default so schema data is never aliased
// into candidate records.
func copyDefault(def any) any {
	switch def.(type) {
	case string, bool, int, int64, float64:
		return def
	}
	cp, err := copystructure.Copy(def)
	if err != nil {
		return def
	}
	return cp
}
