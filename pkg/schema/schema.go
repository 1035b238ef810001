// Package schema declares tool input shapes. A declared Object produces
// three things: a Parse function that validates and coerces raw tool-call
// arguments while collecting every violation (never stopping at the first),
// a human-readable parameter description for prompting, and a JSON-schema
// map for MCP and function-calling adapters.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the closed set of declared field types.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBool    Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindAny     Kind = "any"
)

// Field is one declared parameter. Build fields with the constructors below
// and the chaining modifiers (Req, WithDefault, Min, NonNeg, OneOf).
type Field struct {
	Name        string
	Description string
	Kind        Kind
	Required    bool
	Default     any
	MinItems    int      // arrays: minimum length
	NonNegative bool     // numeric: value must be >= 0
	Enum        []string // strings: allowed values
	Elem        *Field   // arrays: element spec
	Fields      []Field  // objects: nested fields
}

// String declares a string field.
func String(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindString}
}

// Number declares a decimal field. Values may arrive as JSON numbers or as
// numeric strings; both are accepted so agents can pass exact decimals.
func Number(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindNumber}
}

// Integer declares an integer field.
func Integer(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindInteger}
}

// Bool declares a boolean field.
func Bool(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindBool}
}

// Any declares a field accepted without type checking or coercion. Used
// where the legal value set depends on a sibling field, as with ABI call
// arguments whose types follow the function signature.
func Any(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindAny}
}

// Array declares an array field with a homogeneous element spec.
func Array(name, description string, elem Field) Field {
	return Field{Name: name, Description: description, Kind: KindArray, Elem: &elem}
}

// ObjectField declares a nested object field.
func ObjectField(name, description string, fields ...Field) Field {
	return Field{Name: name, Description: description, Kind: KindObject, Fields: fields}
}

// Req marks the field required.
func (f Field) Req() Field { f.Required = true; return f }

// WithDefault sets the value substituted when the field is absent.
func (f Field) WithDefault(v any) Field { f.Default = v; return f }

// Min sets the minimum length of an array field.
func (f Field) Min(n int) Field { f.MinItems = n; return f }

// NonNeg constrains a numeric field to values >= 0.
func (f Field) NonNeg() Field { f.NonNegative = true; return f }

// OneOf constrains a string field to the given values.
func (f Field) OneOf(values ...string) Field { f.Enum = values; return f }

// Issue is a single validation violation at a field path.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one Parse pass. The
// message enumerates all offending field paths so the agent can correct the
// whole call in one round trip.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Path, issue.Message)
	}
	return "invalid parameters: " + strings.Join(parts, "; ")
}

// Object is a declared tool input shape.
type Object struct {
	Fields []Field
}

// NewObject declares a tool input shape from its fields.
func NewObject(fields ...Field) *Object {
	return &Object{Fields: fields}
}

// Parse validates raw arguments against the declaration, applies defaults,
// and coerces values (integral JSON floats become int64). It collects every
// violation and returns them as one *ValidationError; the parsed map is only
/// valid when err is nil. Unknown keys are ignored: LLM tool calls routinely
// carry extraneous fields.
func (o *Object) Parse(raw map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(o.Fields))
	var issues []Issue
	parseFields(o.Fields, raw, "", out, &issues)
	if len(issues) > 0 {
		sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
		return nil, &ValidationError{Issues: issues}
	}
	return out, nil
}

func parseFields(fields []Field, raw map[string]any, prefix string, out map[string]any, issues *[]Issue) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		value, present := raw[f.Name]
		if !present || value == nil {
			if f.Default != nil {
				out[f.Name] = f.Default
			} else if f.Required {
				*issues = append(*issues, Issue{Path: path, Message: "required parameter is missing"})
			}
			continue
		}
		coerced, ok := coerceValue(f, value, path, issues)
		if ok {
			out[f.Name] = coerced
		}
	}
}

func coerceValue(f Field, value any, path string, issues *[]Issue) (any, bool) {
	switch f.Kind {
	case KindAny:
		return value, true

	case KindString:
		s, ok := value.(string)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected a string, got %T", value)})
			return nil, false
		}
		if len(f.Enum) > 0 && !containsString(f.Enum, s) {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("must be one of %s", strings.Join(f.Enum, ", "))})
			return nil, false
		}
		return s, true

	case KindNumber:
		switch v := value.(type) {
		case float64:
			if f.NonNegative && v < 0 {
				*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("must not be negative, got %v", v)})
				return nil, false
			}
			return v, true
		case int:
			return coerceValue(f, float64(v), path, issues)
		case int64:
			return coerceValue(f, float64(v), path, issues)
		case string:
			// Numeric strings pass through untouched so callers can keep
			// exact decimal representations.
			if strings.TrimSpace(v) == "" {
				*issues = append(*issues, Issue{Path: path, Message: "expected a number, got an empty string"})
				return nil, false
			}
			if f.NonNegative && strings.HasPrefix(strings.TrimSpace(v), "-") {
				*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("must not be negative, got %s", v)})
				return nil, false
			}
			return v, true
		default:
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected a number, got %T", value)})
			return nil, false
		}

	case KindInteger:
		var n int64
		switch v := value.(type) {
		case float64:
			if v != float64(int64(v)) {
				*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected an integer, got %v", v)})
				return nil, false
			}
			n = int64(v)
		case int:
			n = int64(v)
		case int64:
			n = v
		default:
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected an integer, got %T", value)})
			return nil, false
		}
		if f.NonNegative && n < 0 {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("must not be negative, got %d", n)})
			return nil, false
		}
		return n, true

	case KindBool:
		if b, ok := value.(bool); ok {
			return b, true
		}
		// adminKey-style fields accept bool-or-string; a plain string is
		// handled by the caller, so only reject non-bool non-string here.
		if s, ok := value.(string); ok {
			return s, true
		}
		*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected a boolean, got %T", value)})
		return nil, false

	case KindArray:
		items, ok := value.([]any)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected an array, got %T", value)})
			return nil, false
		}
		if len(items) < f.MinItems {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("must contain at least %d item(s), got %d", f.MinItems, len(items))})
			return nil, false
		}
		out := make([]any, 0, len(items))
		valid := true
		for i, item := range items {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			coerced, ok := coerceValue(*f.Elem, item, elemPath, issues)
			if !ok {
				valid = false
				continue
			}
			out = append(out, coerced)
		}
		return out, valid

	case KindObject:
		m, ok := value.(map[string]any)
		if !ok {
			*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("expected an object, got %T", value)})
			return nil, false
		}
		before := len(*issues)
		nested := make(map[string]any, len(f.Fields))
		parseFields(f.Fields, m, path, nested, issues)
		return nested, len(*issues) == before

	default:
		*issues = append(*issues, Issue{Path: path, Message: fmt.Sprintf("unknown field kind %q", f.Kind)})
		return nil, false
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Describe renders the parameter list as prompt-ready documentation.
func (o *Object) Describe() string {
	var b strings.Builder
	describeFields(&b, o.Fields, "")
	return b.String()
}

func describeFields(b *strings.Builder, fields []Field, indent string) {
	for _, f := range fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(b, "%s- %s (%s, %s): %s", indent, f.Name, f.Kind, req, f.Description)
		if f.Default != nil {
			fmt.Fprintf(b, " (default: %v)", f.Default)
		}
		if len(f.Enum) > 0 {
			fmt.Fprintf(b, " (one of: %s)", strings.Join(f.Enum, ", "))
		}
		b.WriteString("\n")
		if f.Kind == KindObject {
			describeFields(b, f.Fields, indent+"  ")
		}
		if f.Kind == KindArray && f.Elem != nil && f.Elem.Kind == KindObject {
			describeFields(b, f.Elem.Fields, indent+"  ")
		}
	}
}

// JSONSchema renders the declaration as a JSON-schema object map, the shape
// MCP servers and OpenAI function definitions expect.
func (o *Object) JSONSchema() map[string]any {
	return fieldsToSchema(o.Fields)
}

func fieldsToSchema(fields []Field) map[string]any {
	properties := make(map[string]any, len(fields))
	var required []string
	for _, f := range fields {
		properties[f.Name] = fieldToSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sort.Strings(required)
		schema["required"] = required
	}
	return schema
}

func fieldToSchema(f Field) map[string]any {
	s := map[string]any{"description": f.Description}
	switch f.Kind {
	case KindArray:
		s["type"] = "array"
		if f.Elem != nil {
			s["items"] = fieldToSchema(*f.Elem)
		}
		if f.MinItems > 0 {
			s["minItems"] = f.MinItems
		}
	case KindObject:
		nested := fieldsToSchema(f.Fields)
		nested["description"] = f.Description
		return nested
	case KindAny:
		// no "type" key: JSON schema treats the field as unconstrained
	default:
		s["type"] = string(f.Kind)
	}
	if f.Default != nil {
		s["default"] = f.Default
	}
	if len(f.Enum) > 0 {
		s["enum"] = f.Enum
	}
	if f.NonNegative {
		s["minimum"] = 0
	}
	return s
}
